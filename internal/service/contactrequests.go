package service

import (
	"context"
	"fmt"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"
)

// StatusCounts tallies rows by review status
type StatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved,omitempty"`
	Accepted int `json:"accepted,omitempty"`
	Rejected int `json:"rejected"`
}

func (c *StatusCounts) add(s domain.Status) {
	c.Total++
	switch s {
	case domain.StatusPending:
		c.Pending++
	case domain.StatusApproved, domain.StatusCompleted:
		c.Approved++ // Completed deletions count as approved
	case domain.StatusAccepted:
		c.Accepted++
	case domain.StatusRejected:
		c.Rejected++
	}
}

// ContactRequestList is the contact request view with counts over every row
type ContactRequestList struct {
	listing.Result[domain.ContactRequest]
	Stats StatusCounts `json:"stats"`
}

// ContactRequestService exposes the read-only contact request log
type ContactRequestService struct {
	st *store.Store
}

// List fetches every contact request, newest first, filtered by status
func (s *ContactRequestService) List(ctx context.Context, status string) (ContactRequestList, error) {
	rows, err := s.st.ContactRequests.Select(ctx, store.Query{Order: "created_at desc"}) // Full fetch
	if err != nil {
		return ContactRequestList{}, fmt.Errorf("fetch contact requests: %w", err)
	}
	var stats StatusCounts // Counted before filtering
	for _, r := range rows {
		stats.add(r.Status)
	}
	res := listing.Apply(rows, listing.Match(status, func(r domain.ContactRequest) string { return string(r.Status) }))
	return ContactRequestList{Result: res, Stats: stats}, nil
}
