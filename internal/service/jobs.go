package service

import (
	"context"
	"fmt"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

var jobPoster = store.Preload{Assoc: "Poster", Columns: []string{"id", "full_name", "phone"}}

// JobFilter selects the jobs list view
type JobFilter struct {
	Query  string // title or location
	Status string // defaults to pending
}

// JobService reviews job postings
type JobService struct {
	*Workflow[domain.Job]
	st *store.Store
}

// NewJobService builds the service; rejections need a reason
func NewJobService(st *store.Store, audit *AuditLog) *JobService {
	return &JobService{
		Workflow: &Workflow[domain.Job]{
			table:         st.Jobs,
			audit:         audit,
			kind:          "job",
			notesRequired: true,
			preloads:      []store.Preload{jobPoster},
		},
		st: st,
	}
}

// List fetches every job with its poster, newest first, and filters them
func (s *JobService) List(ctx context.Context, f JobFilter) (listing.Result[domain.Job], error) {
	rows, err := s.st.Jobs.Select(ctx, store.Query{Order: "created_at desc", Preloads: []store.Preload{jobPoster}})
	if err != nil {
		return listing.Result[domain.Job]{}, fmt.Errorf("fetch jobs: %w", err)
	}
	return listing.Apply(rows,
		listing.Search(f.Query,
			func(j domain.Job) string { return j.Title },
			func(j domain.Job) string { return listing.Str(j.Location) },
		),
		listing.Match(defaultStatus(f.Status), func(j domain.Job) string { return string(j.Status) }),
	), nil
}

// Get loads one job with its poster
func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return s.st.Jobs.Get(ctx, id, jobPoster)
}
