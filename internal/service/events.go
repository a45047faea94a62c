package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

var eventPoster = store.Preload{Assoc: "Poster", Columns: []string{"id", "full_name"}}

// EventFilter selects the events list view
type EventFilter struct {
	Query  string // title or poster name
	Status string // defaults to pending
	Type   string // an event type, or "announcement"
}

// EventInput is the editable part of an event
type EventInput struct {
	Title            string     `json:"title" binding:"required"`
	Description      *string    `json:"description"`
	EventDate        *time.Time `json:"event_date"`
	PosterURL        *string    `json:"poster_url"`
	EventType        string     `json:"event_type"`
	IsAnnouncement   bool       `json:"is_announcement"`
	AnnouncementText *string    `json:"announcement_text"`
}

func (in *EventInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.EventType == "" {
		in.EventType = domain.EventTypeEvent
	}
	if !slices.Contains(domain.EventTypes, in.EventType) {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, in.EventType)
	}
	return nil
}

// EventService reviews and curates events and announcements
type EventService struct {
	*Workflow[domain.Event]
	st    *store.Store
	audit *AuditLog
}

// NewEventService builds the service; approval also makes the event visible
// and a rejection reason is optional
func NewEventService(st *store.Store, audit *AuditLog) *EventService {
	return &EventService{
		Workflow: &Workflow[domain.Event]{
			table:     st.Events,
			audit:     audit,
			kind:      "event",
			onApprove: map[string]any{"is_visible": true},
			preloads:  []store.Preload{eventPoster},
		},
		st:    st,
		audit: audit,
	}
}

// List fetches every event with its poster, newest first, and filters them
func (s *EventService) List(ctx context.Context, f EventFilter) (listing.Result[domain.Event], error) {
	rows, err := s.st.Events.Select(ctx, store.Query{Order: "created_at desc", Preloads: []store.Preload{eventPoster}}) // Full fetch, filtered in memory
	if err != nil {
		return listing.Result[domain.Event]{}, fmt.Errorf("fetch events: %w", err)
	}
	var byType listing.Predicate[domain.Event]
	if f.Type == "announcement" {
		byType = func(e domain.Event) bool { return e.IsAnnouncement }
	} else {
		byType = listing.Match(f.Type, func(e domain.Event) string { return e.EventType })
	}
	return listing.Apply(rows,
		listing.Search(f.Query,
			func(e domain.Event) string { return e.Title },
			func(e domain.Event) string { return e.Poster.Name() },
		),
		listing.Match(defaultStatus(f.Status), func(e domain.Event) string { return string(e.Status) }),
		byType,
	), nil
}

// Get loads one event with its poster
func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.st.Events.Get(ctx, id, eventPoster)
}

// Create publishes an admin-authored event: approved, visible and posted by admin
func (s *EventService) Create(ctx context.Context, admin uuid.UUID, in EventInput) (*domain.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ts := now()
	ev := &domain.Event{
		Title:            in.Title,
		Description:      in.Description,
		EventDate:        in.EventDate,
		PosterURL:        in.PosterURL,
		EventType:        in.EventType,
		IsAnnouncement:   in.IsAnnouncement,
		AnnouncementText: in.AnnouncementText,
		PostedBy:         &admin,
		ApprovedBy:       &admin,
		Status:           domain.StatusApproved,
		IsVisible:        true,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	if err := s.st.Events.Insert(ctx, ev); err != nil { // Published immediately
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.audit.Record(ctx, admin, "create", "event", ev.ID, map[string]any{"title": ev.Title})
	return ev, nil
}

// Update rewrites the editable fields of an event
func (s *EventService) Update(ctx context.Context, admin, id uuid.UUID, in EventInput) (*domain.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.st.Events.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	err := s.st.Events.Update(ctx, id, map[string]any{
		"title":             in.Title,
		"description":       in.Description,
		"event_date":        in.EventDate,
		"poster_url":        in.PosterURL,
		"event_type":        in.EventType,
		"is_announcement":   in.IsAnnouncement,
		"announcement_text": in.AnnouncementText,
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.audit.Record(ctx, admin, "update", "event", id, map[string]any{"title": in.Title})
	return s.Get(ctx, id)
}

// ToggleFeatured flips is_featured
func (s *EventService) ToggleFeatured(ctx context.Context, admin, id uuid.UUID) (*domain.Event, error) {
	return flip(ctx, s.st.Events, s.audit, admin, id, "event", "is_featured", func(e *domain.Event) bool { return e.IsFeatured })
}

// ToggleVisibility flips is_visible
func (s *EventService) ToggleVisibility(ctx context.Context, admin, id uuid.UUID) (*domain.Event, error) {
	return flip(ctx, s.st.Events, s.audit, admin, id, "event", "is_visible", func(e *domain.Event) bool { return e.IsVisible })
}

// Delete permanently removes an event
func (s *EventService) Delete(ctx context.Context, admin, id uuid.UUID) error {
	return remove(ctx, s.st.Events, s.audit, admin, id, "event")
}
