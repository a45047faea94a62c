package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

var holderUser = store.Preload{Assoc: "User", Columns: []string{"id", "full_name", "phone", "photo_url"}}

// PostHolderInput is the editable part of a post holder
type PostHolderInput struct {
	UserID       *uuid.UUID `json:"user_id"`
	Designation  string     `json:"designation" binding:"required"`
	TermStart    *time.Time `json:"term_start"`
	TermEnd      *time.Time `json:"term_end"`
	Bio          *string    `json:"bio"`
	DisplayOrder *int       `json:"display_order"`
}

func (in *PostHolderInput) validate() error {
	in.Designation = strings.TrimSpace(in.Designation)
	if !slices.Contains(domain.Designations, in.Designation) { // Exact title match
		return fmt.Errorf("%w: unknown designation %q", ErrInvalidInput, in.Designation)
	}
	if in.TermStart != nil && in.TermEnd != nil && in.TermEnd.Before(*in.TermStart) {
		return fmt.Errorf("%w: term ends before it starts", ErrInvalidInput)
	}
	return nil
}

// PostHolderService manages the office-bearer listing
type PostHolderService struct {
	st    *store.Store
	audit *AuditLog
}

// List returns every post holder in display order
func (s *PostHolderService) List(ctx context.Context) ([]domain.PostHolder, error) {
	rows, err := s.st.PostHolders.Select(ctx, store.Query{Order: "display_order asc", Preloads: []store.Preload{holderUser}})
	if err != nil {
		return nil, fmt.Errorf("fetch post holders: %w", err)
	}
	return rows, nil
}

// Create adds a post holder
func (s *PostHolderService) Create(ctx context.Context, admin uuid.UUID, in PostHolderInput) (*domain.PostHolder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ts := now() // Same stamp for created and updated
	ph := &domain.PostHolder{
		UserID:       in.UserID,
		Designation:  in.Designation,
		TermStart:    in.TermStart,
		TermEnd:      in.TermEnd,
		Bio:          in.Bio,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := s.st.PostHolders.Insert(ctx, ph); err != nil {
		return nil, fmt.Errorf("create post holder: %w", err)
	}
	s.audit.Record(ctx, admin, "create", "post_holder", ph.ID, map[string]any{"designation": ph.Designation})
	return s.st.PostHolders.Get(ctx, ph.ID, holderUser)
}

// Update rewrites a post holder
func (s *PostHolderService) Update(ctx context.Context, admin, id uuid.UUID, in PostHolderInput) (*domain.PostHolder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.st.PostHolders.Get(ctx, id); err != nil { // 404 before writing
		return nil, fmt.Errorf("load post holder: %w", err)
	}
	err := s.st.PostHolders.Update(ctx, id, map[string]any{
		"user_id":       in.UserID,
		"designation":   in.Designation,
		"term_start":    in.TermStart,
		"term_end":      in.TermEnd,
		"bio":           in.Bio,
		"display_order": in.DisplayOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("update post holder: %w", err)
	}
	s.audit.Record(ctx, admin, "update", "post_holder", id, map[string]any{"designation": in.Designation})
	return s.st.PostHolders.Get(ctx, id, holderUser)
}

// Delete permanently removes a post holder
func (s *PostHolderService) Delete(ctx context.Context, admin, id uuid.UUID) error {
	return remove(ctx, s.st.PostHolders, s.audit, admin, id, "post_holder")
}
