package service

import (
	"context"
	"fmt"
	"strings"

	"community_admin/internal/domain"
	"community_admin/internal/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const settingsKey = "console:settings"

// SettingsStore persists the console settings in Redis
type SettingsStore struct {
	rdb   redis.Cmdable
	audit *AuditLog
}

// Get returns the saved settings, or the defaults when none were saved
func (s *SettingsStore) Get(ctx context.Context) (domain.AppSettings, error) {
	st := domain.DefaultSettings() // Saved fields override the defaults
	if _, err := utils.GetCache(ctx, s.rdb, settingsKey, &st); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}

// Save replaces the settings
func (s *SettingsStore) Save(ctx context.Context, admin uuid.UUID, st domain.AppSettings) (domain.AppSettings, error) {
	st.AppName = strings.TrimSpace(st.AppName)
	if st.AppName == "" {
		return st, fmt.Errorf("%w: app name is required", ErrInvalidInput)
	}
	if err := utils.SetCache(ctx, s.rdb, settingsKey, st, 0); err != nil { // No expiry
		return st, fmt.Errorf("save settings: %w", err)
	}
	s.audit.Record(ctx, admin, "update", "settings", uuid.Nil, nil)
	return st, nil
}

// Reset drops the saved settings so Get falls back to the defaults
func (s *SettingsStore) Reset(ctx context.Context, admin uuid.UUID) (domain.AppSettings, error) {
	if err := utils.DeleteCache(ctx, s.rdb, settingsKey); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("reset settings: %w", err)
	}
	s.audit.Record(ctx, admin, "reset", "settings", uuid.Nil, nil)
	return domain.DefaultSettings(), nil
}

// SetQRCode stores the URL of a freshly uploaded UPI QR image
func (s *SettingsStore) SetQRCode(ctx context.Context, admin uuid.UUID, url string) (domain.AppSettings, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return st, err
	}
	st.UPIQRCode = url
	return s.Save(ctx, admin, st)
}
