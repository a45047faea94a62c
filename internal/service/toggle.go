package service

import (
	"context"
	"fmt"

	"community_admin/internal/store"

	"github.com/google/uuid"
)

// flip inverts one boolean column of a row and returns the reloaded row
func flip[T any](ctx context.Context, table *store.Table[T], audit *AuditLog, admin, id uuid.UUID, kind, column string, get func(*T) bool) (*T, error) {
	row, err := table.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	next := !get(row) // Invert the stored value
	if err := table.Update(ctx, id, map[string]any{column: next}); err != nil {
		return nil, fmt.Errorf("update %s.%s: %w", kind, column, err)
	}
	audit.Record(ctx, admin, "toggle_"+column, kind, id, map[string]any{column: next})
	return table.Get(ctx, id) // Reload for the response
}

// remove permanently deletes one row and records it
func remove[T any](ctx context.Context, table *store.Table[T], audit *AuditLog, admin, id uuid.UUID, kind string) error {
	if err := table.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	audit.Record(ctx, admin, "delete", kind, id, nil)
	return nil
}
