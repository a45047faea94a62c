package service

import (
	"context"

	"community_admin/internal/domain"
	"community_admin/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// AuditLog writes and reads the admin_logs trail
type AuditLog struct {
	st *store.Store
}

// NewAuditLog returns an AuditLog over st
func NewAuditLog(st *store.Store) *AuditLog {
	return &AuditLog{st: st}
}

// Record appends one entry. A failed write is logged and never fails the caller.
func (a *AuditLog) Record(ctx context.Context, admin uuid.UUID, action, targetType string, targetID uuid.UUID, details map[string]any) {
	entry := &domain.AdminLog{Action: action, Details: datatypes.JSONMap(details)}
	if admin != uuid.Nil {
		entry.AdminID = &admin
	}
	if targetType != "" {
		entry.TargetType = &targetType
	}
	if targetID != uuid.Nil {
		id := targetID.String()
		entry.TargetID = &id
	}
	entry.CreatedAt = now() // Service clock
	if err := a.st.AdminLogs.Insert(ctx, entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"action": action,
			"target": targetType,
			"error":  err,
		}).Warn("failed to write audit log")
	}
}

// Recent returns the newest entries first, at most limit of them
func (a *AuditLog) Recent(ctx context.Context, limit int) ([]domain.AdminLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100 // Default page
	}
	return a.st.AdminLogs.Select(ctx, store.Query{Order: "created_at desc", Limit: limit})
}
