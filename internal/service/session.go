package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "console:revoked:"

// Sessions keeps the denylist of signed-out tokens
type Sessions struct {
	rdb redis.Cmdable
}

// NewSessions returns a denylist over rdb
func NewSessions(rdb redis.Cmdable) *Sessions {
	return &Sessions{rdb: rdb}
}

// Revoke denies tokenID until expiresAt, when the token would lapse anyway
func (s *Sessions) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // Already expired
	}
	return s.rdb.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err() // Key lapses with the token
}

// IsRevoked reports whether tokenID was signed out
func (s *Sessions) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedPrefix+tokenID).Result()
	return n > 0, err
}
