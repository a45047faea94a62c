package store_test

import (
	"context"
	"testing"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/store"
	"community_admin/internal/store/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCRUD(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)

	u := &domain.User{Phone: "9000000001", FullName: storetest.Ptr("Asha")}
	require.NoError(t, s.Users.Insert(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)

	got, err := s.Users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name())
	assert.False(t, got.IsVerified)

	require.NoError(t, s.Users.Update(ctx, u.ID, map[string]any{"is_verified": true}))
	got, err = s.Users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)

	n, err := s.Users.Count(ctx, store.Eq("is_verified", true))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, s.Users.Delete(ctx, u.ID))
	_, err = s.Users.Get(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Users.Delete(ctx, u.ID), store.ErrNotFound)
}

func TestTableSelectOrderLimitPreload(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)

	owner := &domain.User{Phone: "9000000002", FullName: storetest.Ptr("Ravi"), Email: storetest.Ptr("r@example.com")}
	require.NoError(t, s.Users.Insert(ctx, owner))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		job := &domain.Job{Title: "job", PostedBy: &owner.ID, Status: domain.StatusPending, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, s.Jobs.Insert(ctx, job))
	}

	rows, err := s.Jobs.Select(ctx, store.Query{
		Order:    "created_at desc",
		Limit:    2,
		Preloads: []store.Preload{{Assoc: "Poster", Columns: []string{"id", "full_name", "phone"}}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
	require.NotNil(t, rows[0].Poster)
	assert.Equal(t, "Ravi", rows[0].Poster.Name())
	assert.Nil(t, rows[0].Poster.Email)
}

func TestTableDeleteWhere(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)
	owner := uuid.New()
	other := uuid.New()
	for _, id := range []uuid.UUID{owner, owner, other} {
		require.NoError(t, s.BloodDonors.Insert(ctx, &domain.BloodDonor{UserID: id, BloodGroup: "O+", City: "Jabalpur"}))
	}
	n, err := s.BloodDonors.DeleteWhere(ctx, store.Eq("user_id", owner))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	left, err := s.BloodDonors.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, left)
}
