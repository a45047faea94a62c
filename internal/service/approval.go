package service

import (
	"context"
	"fmt"
	"strings"

	"community_admin/internal/domain"
	"community_admin/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Workflow moves submissions of one kind through pending -> approved | rejected
type Workflow[T domain.Reviewable] struct {
	table         *store.Table[T]
	audit         *AuditLog
	kind          string         // target type recorded in the audit log
	notesRequired bool           // reject needs a reason
	onApprove     map[string]any // extra columns written on approval
	preloads      []store.Preload
}

// Approve marks the row approved by admin and returns it reloaded
func (w *Workflow[T]) Approve(ctx context.Context, admin, id uuid.UUID) (*T, error) {
	fields := map[string]any{"status": domain.StatusApproved, "approved_by": admin}
	for k, v := range w.onApprove {
		fields[k] = v
	}
	return w.transition(ctx, admin, id, domain.StatusApproved, fields, "")
}

// Reject marks the row rejected with the admin's notes. When notes are
// required they are checked before the row is read.
func (w *Workflow[T]) Reject(ctx context.Context, admin, id uuid.UUID, notes string) (*T, error) {
	notes = strings.TrimSpace(notes)
	if w.notesRequired && notes == "" {
		return nil, ErrRejectionReasonRequired
	}
	fields := map[string]any{"status": domain.StatusRejected, "approved_by": admin}
	if notes != "" {
		fields["approval_notes"] = notes
	}
	return w.transition(ctx, admin, id, domain.StatusRejected, fields, notes)
}

func (w *Workflow[T]) transition(ctx context.Context, admin, id uuid.UUID, next domain.Status, fields map[string]any, notes string) (*T, error) {
	row, err := w.table.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", w.kind, err)
	}
	if cur := (*row).ReviewStatus(); !cur.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, w.kind, cur, next)
	}
	if err := w.table.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update %s: %w", w.kind, err)
	}
	logrus.WithFields(logrus.Fields{
		"kind":   w.kind,
		"id":     id,
		"status": next,
		"admin":  admin,
	}).Info("submission reviewed")
	details := map[string]any{"status": string(next)}
	if notes != "" {
		details["notes"] = notes
	}
	w.audit.Record(ctx, admin, string(next), w.kind, id, details)
	return w.table.Get(ctx, id, w.preloads...)
}
