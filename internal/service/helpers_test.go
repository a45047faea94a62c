package service

import (
	"context"
	"testing"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/store"
	"community_admin/internal/store/storetest"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *Services
	st    *store.Store
	redis *miniredis.Miniredis
	admin uuid.UUID
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := storetest.Open(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	f := &fixture{svc: New(st, rdb), st: st, redis: mr, ctx: context.Background()}
	f.admin = f.user(t, "9000000000", "Admin", true).ID
	require.NoError(t, st.Users.Update(f.ctx, f.admin, map[string]any{"is_admin": true}))
	return f
}

func (f *fixture) user(t *testing.T, phone, name string, verified bool) *domain.User {
	t.Helper()
	u := &domain.User{Phone: phone, FullName: storetest.Ptr(name), IsVerified: verified}
	require.NoError(t, f.st.Users.Insert(f.ctx, u))
	return u
}

func (f *fixture) job(t *testing.T, title string, status domain.Status) *domain.Job {
	t.Helper()
	j := &domain.Job{Title: title, Status: status, CreatedAt: time.Now()}
	require.NoError(t, f.st.Jobs.Insert(f.ctx, j))
	return j
}

func (f *fixture) event(t *testing.T, title string, postedBy *uuid.UUID) *domain.Event {
	t.Helper()
	e := &domain.Event{Title: title, EventType: domain.EventTypeEvent, Status: domain.StatusPending, PostedBy: postedBy, CreatedAt: time.Now()}
	require.NoError(t, f.st.Events.Insert(f.ctx, e))
	return e
}

func (f *fixture) donation(t *testing.T, name string, amount float64, at time.Time) *domain.Donation {
	t.Helper()
	d := &domain.Donation{DonorName: name, Amount: amount, DonatedAt: at}
	require.NoError(t, f.st.Donations.Insert(f.ctx, d))
	return d
}

func (f *fixture) auditCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.st.AdminLogs.Count(f.ctx)
	require.NoError(t, err)
	return n
}
