package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

// DonationCSVHeaders is the header line of the donation export
var DonationCSVHeaders = []string{"Donor Name", "Amount", "Transaction ID", "UPI Ref", "Date"}

// DonationFilter selects the donations list view
type DonationFilter struct {
	Query        string     // donor name, transaction id or UPI ref
	From         *time.Time // inclusive, by calendar day
	To           *time.Time // inclusive, by calendar day
	Verification string     // all, verified, unverified
}

// DonationStats summarises a set of donations
type DonationStats struct {
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
	ThisMonth float64 `json:"this_month"`
}

// MonthTotal is one bar of the monthly donations chart
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// DonationList is the donations view with stats over its filtered rows
type DonationList struct {
	listing.Result[domain.Donation]
	Stats DonationStats `json:"stats"`
}

// DonationService records and verifies donations
type DonationService struct {
	st    *store.Store
	audit *AuditLog
}

// List fetches every donation, newest first, filters them and computes stats over the view
func (s *DonationService) List(ctx context.Context, f DonationFilter) (DonationList, error) {
	rows, err := s.st.Donations.Select(ctx, store.Query{Order: "donated_at desc"}) // Full fetch, filtered in memory
	if err != nil {
		return DonationList{}, fmt.Errorf("fetch donations: %w", err)
	}
	res := listing.Apply(rows,
		listing.Search(f.Query,
			func(d domain.Donation) string { return d.DonorName },
			func(d domain.Donation) string { return listing.Str(d.TransactionID) },
			func(d domain.Donation) string { return listing.Str(d.UPIRef) },
		),
		dateRange(f.From, f.To),
		listing.Flag(f.Verification, "verified", "unverified", func(d domain.Donation) bool { return d.IsVerified }),
	)
	return DonationList{Result: res, Stats: Stats(res.Items, now())}, nil
}

func dateRange(from, to *time.Time) listing.Predicate[domain.Donation] {
	if from == nil && to == nil {
		return nil
	}
	return func(d domain.Donation) bool {
		day := truncateDay(d.DonatedAt)
		if from != nil && day.Before(truncateDay(*from)) {
			return false
		}
		if to != nil && day.After(truncateDay(*to)) {
			return false
		}
		return true
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Stats totals donations; ThisMonth covers those donated in the calendar month of ref
func Stats(donations []domain.Donation, ref time.Time) DonationStats {
	var st DonationStats
	for _, d := range donations {
		st.Total += d.Amount
		if y, m, _ := d.DonatedAt.In(ref.Location()).Date(); y == ref.Year() && m == ref.Month() {
			st.ThisMonth += d.Amount
		}
	}
	st.Count = len(donations)
	if st.Count > 0 {
		st.Average = math.Round(st.Total/float64(st.Count)*100) / 100 // Two decimals
	}
	return st
}

// Monthly returns totals for the six calendar months ending with the current one, oldest first
func (s *DonationService) Monthly(ctx context.Context) ([]MonthTotal, error) {
	ref := now()
	start := time.Date(ref.Year(), ref.Month()-5, 1, 0, 0, 0, 0, ref.Location())
	rows, err := s.st.Donations.Select(ctx, store.Query{Columns: []string{"id", "amount", "donated_at"}}) // Every donation, unfiltered
	if err != nil {
		return nil, fmt.Errorf("fetch donations: %w", err)
	}
	return MonthlySeries(rows, start), nil
}

// MonthlySeries buckets donations into the six months starting at start
func MonthlySeries(donations []domain.Donation, start time.Time) []MonthTotal {
	series := make([]MonthTotal, 6)
	for i := range series {
		series[i].Month = start.AddDate(0, i, 0).Format("Jan 2006")
	}
	for _, d := range donations {
		at := d.DonatedAt.In(start.Location())
		i := (at.Year()-start.Year())*12 + int(at.Month()) - int(start.Month())
		if i >= 0 && i < len(series) {
			series[i].Total += d.Amount
		}
	}
	return series
}

// SetVerification marks a donation verified by admin, or clears the verification
func (s *DonationService) SetVerification(ctx context.Context, admin, id uuid.UUID, verified bool, notes string) (*domain.Donation, error) {
	if _, err := s.st.Donations.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("load donation: %w", err)
	}
	fields := map[string]any{"is_verified": verified, "verified_by": nil, "verified_at": nil}
	if verified {
		fields["verified_by"] = admin
		fields["verified_at"] = now()
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		fields["admin_notes"] = notes
	}
	if err := s.st.Donations.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update donation: %w", err)
	}
	s.audit.Record(ctx, admin, "set_verification", "donation", id, map[string]any{"verified": verified})
	return s.st.Donations.Get(ctx, id)
}

// Delete permanently removes a donation, verified or not
func (s *DonationService) Delete(ctx context.Context, admin, id uuid.UUID) error {
	return remove(ctx, s.st.Donations, s.audit, admin, id, "donation")
}

// DonationCSVRows renders donations in DonationCSVHeaders order
func DonationCSVRows(donations []domain.Donation) [][]string {
	rows := make([][]string, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, []string{
			d.DonorName,
			strconv.FormatFloat(d.Amount, 'f', -1, 64),
			orNA(listing.Str(d.TransactionID)),
			orNA(listing.Str(d.UPIRef)),
			d.DonatedAt.Format("2006-01-02"),
		})
	}
	return rows
}
