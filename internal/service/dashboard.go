package service

import (
	"context"
	"fmt"

	"community_admin/internal/domain"
	"community_admin/internal/store"

	"golang.org/x/sync/errgroup"
)

// recentLimit is the size of each recent activity feed
const recentLimit = 5

// ChartPoint is one slice or bar of a dashboard chart
type ChartPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DashboardStats is everything the overview page shows
type DashboardStats struct {
	TotalUsers         int64             `json:"total_users"`
	VerifiedUsers      int64             `json:"verified_users"`
	TotalMatrimonial   int64             `json:"total_matrimonial"`
	PendingMatrimonial int64             `json:"pending_matrimonial"`
	TotalEvents        int64             `json:"total_events"`
	PendingEvents      int64             `json:"pending_events"`
	TotalJobs          int64             `json:"total_jobs"`
	PendingJobs        int64             `json:"pending_jobs"`
	TotalDonations     float64           `json:"total_donations"`
	PendingApprovals   int64             `json:"pending_approvals"`
	PendingByType      []ChartPoint      `json:"pending_by_type"`
	UserVerification   []ChartPoint      `json:"user_verification"`
	RecentUsers        []domain.User     `json:"recent_users"`
	RecentEvents       []domain.Event    `json:"recent_events"`
	RecentDonations    []domain.Donation `json:"recent_donations"`
}

// Dashboard aggregates counts and recent rows across tables
type Dashboard struct {
	st *store.Store
}

// Load runs every query concurrently and returns once all have finished.
// Any failed query fails the whole load.
func (d *Dashboard) Load(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats
	g, ctx := errgroup.WithContext(ctx) // First failure cancels the rest

	count := func(dst *int64, label string, n func() (int64, error)) {
		g.Go(func() error {
			v, err := n()
			if err != nil {
				return fmt.Errorf("count %s: %w", label, err)
			}
			*dst = v // Each goroutine owns one field
			return nil
		})
	}
	pending := store.Eq("status", domain.StatusPending)
	count(&s.TotalUsers, "users", func() (int64, error) { return d.st.Users.Count(ctx) })
	count(&s.VerifiedUsers, "verified users", func() (int64, error) { return d.st.Users.Count(ctx, store.Eq("is_verified", true)) })
	count(&s.TotalMatrimonial, "matrimonial", func() (int64, error) { return d.st.Matrimonial.Count(ctx) })
	count(&s.PendingMatrimonial, "pending matrimonial", func() (int64, error) { return d.st.Matrimonial.Count(ctx, pending) })
	count(&s.TotalEvents, "events", func() (int64, error) { return d.st.Events.Count(ctx) })
	count(&s.PendingEvents, "pending events", func() (int64, error) { return d.st.Events.Count(ctx, pending) })
	count(&s.TotalJobs, "jobs", func() (int64, error) { return d.st.Jobs.Count(ctx) })
	count(&s.PendingJobs, "pending jobs", func() (int64, error) { return d.st.Jobs.Count(ctx, pending) })

	g.Go(func() error {
		rows, err := d.st.Donations.Select(ctx, store.Query{Columns: []string{"id", "amount"}}) // Summed in Go
		if err != nil {
			return fmt.Errorf("sum donations: %w", err)
		}
		for _, r := range rows {
			s.TotalDonations += r.Amount
		}
		return nil
	})
	g.Go(func() (err error) {
		s.RecentUsers, err = d.st.Users.Select(ctx, store.Query{Order: "created_at desc", Limit: recentLimit})
		return err
	})
	g.Go(func() (err error) {
		s.RecentEvents, err = d.st.Events.Select(ctx, store.Query{Order: "created_at desc", Limit: recentLimit})
		return err
	})
	g.Go(func() (err error) {
		s.RecentDonations, err = d.st.Donations.Select(ctx, store.Query{Order: "donated_at desc", Limit: recentLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err // Whole dashboard fails together
	}

	s.PendingApprovals = s.PendingMatrimonial + s.PendingEvents + s.PendingJobs
	s.PendingByType = []ChartPoint{
		{Name: "Matrimonial", Value: s.PendingMatrimonial},
		{Name: "Events", Value: s.PendingEvents},
		{Name: "Jobs", Value: s.PendingJobs},
	}
	s.UserVerification = []ChartPoint{
		{Name: "Verified", Value: s.VerifiedUsers},
		{Name: "Unverified", Value: s.TotalUsers - s.VerifiedUsers},
	}
	return &s, nil
}
