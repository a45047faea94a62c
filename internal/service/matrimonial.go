package service

import (
	"context"
	"fmt"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

var profileOwner = store.Preload{Assoc: "User", Columns: []string{"id", "full_name", "phone"}}

// MatrimonialFilter selects the matrimonial list view
type MatrimonialFilter struct {
	Query  string // owner name or city
	Status string // defaults to pending
	Gender string
}

// MatrimonialService reviews matrimonial profiles
type MatrimonialService struct {
	*Workflow[domain.MatrimonialProfile]
	st *store.Store
}

// NewMatrimonialService builds the service; rejections need a reason
func NewMatrimonialService(st *store.Store, audit *AuditLog) *MatrimonialService {
	return &MatrimonialService{
		Workflow: &Workflow[domain.MatrimonialProfile]{
			table:         st.Matrimonial,
			audit:         audit,
			kind:          "matrimonial_profile",
			notesRequired: true,
			preloads:      []store.Preload{profileOwner},
		},
		st: st,
	}
}

// List fetches every profile with its owner, newest first, and filters them
func (s *MatrimonialService) List(ctx context.Context, f MatrimonialFilter) (listing.Result[domain.MatrimonialProfile], error) {
	rows, err := s.st.Matrimonial.Select(ctx, store.Query{Order: "created_at desc", Preloads: []store.Preload{profileOwner}})
	if err != nil {
		return listing.Result[domain.MatrimonialProfile]{}, fmt.Errorf("fetch matrimonial profiles: %w", err)
	}
	return listing.Apply(rows,
		listing.Search(f.Query,
			func(p domain.MatrimonialProfile) string { return p.User.Name() },
			func(p domain.MatrimonialProfile) string { return listing.Str(p.City) },
		),
		listing.Match(defaultStatus(f.Status), func(p domain.MatrimonialProfile) string { return string(p.Status) }),
		listing.MatchFold(f.Gender, func(p domain.MatrimonialProfile) string { return p.Gender }),
	), nil
}

// Get loads one profile with its full owner record
func (s *MatrimonialService) Get(ctx context.Context, id uuid.UUID) (*domain.MatrimonialProfile, error) {
	return s.st.Matrimonial.Get(ctx, id, store.Preload{Assoc: "User"})
}

// defaultStatus applies the pending default of review list views
func defaultStatus(selected string) string {
	if selected == "" {
		return string(domain.StatusPending)
	}
	return selected
}
