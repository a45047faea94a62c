package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"
	"community_admin/internal/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Public deletion requests allowed per client address and window
const (
	deletionRequestLimit  = 5
	deletionRequestWindow = time.Hour
)

// DeletionFilter selects the deletion request list view
type DeletionFilter struct {
	Query  string // phone or email
	Status string // defaults to pending
}

// DeletionList is the deletion request view with counts over every row
type DeletionList struct {
	listing.Result[domain.DeletionRequest]
	Stats StatusCounts `json:"stats"`
}

// DeletionInput is the public account deletion form
type DeletionInput struct {
	Phone  string  `json:"phone" binding:"required"`
	Email  *string `json:"email"`
	Reason *string `json:"reason"`
}

// PurgeResult is the outcome of deleting one user's rows from one table
type PurgeResult struct {
	Table   string `json:"table"`
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// DeletionOutcome reports a processed request and, on approval, the purge
type DeletionOutcome struct {
	Request *domain.DeletionRequest `json:"request"`
	Purge   []PurgeResult           `json:"purge,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// DeletionService processes account deletion requests
type DeletionService struct {
	st    *store.Store
	users *UserService
	audit *AuditLog
	rdb   redis.Cmdable
}

// List fetches every request, newest first, and filters them
func (s *DeletionService) List(ctx context.Context, f DeletionFilter) (DeletionList, error) {
	rows, err := s.st.DeletionRequests.Select(ctx, store.Query{Order: "requested_at desc"})
	if err != nil {
		return DeletionList{}, fmt.Errorf("fetch deletion requests: %w", err)
	}
	var stats StatusCounts
	for _, r := range rows {
		stats.add(r.Status)
	}
	res := listing.Apply(rows,
		listing.Search(f.Query,
			func(r domain.DeletionRequest) string { return r.Phone },
			func(r domain.DeletionRequest) string { return listing.Str(r.Email) },
		),
		listing.Match(defaultStatus(f.Status), func(r domain.DeletionRequest) string { return string(r.Status) }),
	)
	return DeletionList{Result: res, Stats: stats}, nil
}

// Submit files a pending request from the public form, limited per client address
func (s *DeletionService) Submit(ctx context.Context, clientIP string, in DeletionInput) (*domain.DeletionRequest, error) {
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if s.rdb != nil {
		ok, err := utils.Allow(ctx, s.rdb, "ratelimit:account-deletion:"+clientIP, deletionRequestLimit, deletionRequestWindow)
		if err != nil {
			logrus.WithFields(logrus.Fields{"ip": clientIP, "error": err}).Warn("rate limiter unavailable") // Fail open
		} else if !ok {
			return nil, ErrRateLimited
		}
	}
	req := &domain.DeletionRequest{
		Phone:       in.Phone,
		Email:       in.Email,
		Reason:      in.Reason,
		Status:      domain.StatusPending,
		RequestedAt: now(),
	}
	if err := s.st.DeletionRequests.Insert(ctx, req); err != nil {
		return nil, fmt.Errorf("create deletion request: %w", err)
	}
	logrus.WithFields(logrus.Fields{"id": req.ID}).Info("deletion request submitted")
	return req, nil
}

// Process approves or rejects a request. The request is updated first; an
// approval then purges the user's rows table by table. A phone with no user
// leaves the status updated and reports ErrUserNotFound in the outcome.
func (s *DeletionService) Process(ctx context.Context, admin, id uuid.UUID, approve bool, notes string) (*DeletionOutcome, error) {
	req, err := s.st.DeletionRequests.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load deletion request: %w", err)
	}
	next := domain.StatusRejected
	if approve {
		next = domain.StatusApproved
	}
	if !req.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: deletion request %s -> %s", ErrInvalidTransition, req.Status, next)
	}
	fields := map[string]any{
		"status":       next,
		"processed_at": now(),
		"processed_by": admin,
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		fields["admin_notes"] = notes
	}
	if err := s.st.DeletionRequests.Update(ctx, id, fields); err != nil { // One UPDATE
		return nil, fmt.Errorf("update deletion request: %w", err)
	}
	s.audit.Record(ctx, admin, string(next), "deletion_request", id, map[string]any{"phone": req.Phone})

	out := &DeletionOutcome{}
	if approve {
		purge, err := s.Purge(ctx, admin, req.Phone) // Status stays approved whatever happens here
		out.Purge = purge
		if err != nil {
			out.Error = err.Error()
		}
	}
	out.Request, err = s.st.DeletionRequests.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload deletion request: %w", err)
	}
	return out, nil
}

// Purge deletes everything the user owning phone created, then the user.
// Each table is cleared independently; a failure does not undo earlier deletes.
func (s *DeletionService) Purge(ctx context.Context, admin uuid.UUID, phone string) ([]PurgeResult, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	uid := user.ID
	steps := []struct {
		table string
		del   func() (int64, error)
	}{
		{"matrimonial_profiles", func() (int64, error) { return s.st.Matrimonial.DeleteWhere(ctx, store.Eq("user_id", uid)) }},
		{"events", func() (int64, error) { return s.st.Events.DeleteWhere(ctx, store.Eq("posted_by", uid)) }},
		{"jobs", func() (int64, error) { return s.st.Jobs.DeleteWhere(ctx, store.Eq("posted_by", uid)) }},
		{"blood_donors", func() (int64, error) { return s.st.BloodDonors.DeleteWhere(ctx, store.Eq("user_id", uid)) }},
		{"contact_requests", func() (int64, error) { return s.st.ContactRequests.DeleteWhere(ctx, store.Eq("requester_id", uid)) }},
		{"users", func() (int64, error) { return s.st.Users.DeleteWhere(ctx, store.Eq("id", uid)) }},
	}
	results := make([]PurgeResult, 0, len(steps)) // One entry per table, in order
	var failed int
	for _, step := range steps {
		n, err := step.del() // No transaction
		res := PurgeResult{Table: step.table, Deleted: n}
		if err != nil {
			failed++
			res.Error = err.Error()
			logrus.WithFields(logrus.Fields{"table": step.table, "user": uid, "error": err}).Error("purge step failed")
		}
		results = append(results, res)
	}
	s.audit.Record(ctx, admin, "purge_user", "user", uid, map[string]any{"failed_tables": failed})
	if failed > 0 {
		return results, fmt.Errorf("purge incomplete: %d of %d tables failed", failed, len(steps))
	}
	return results, nil
}
