package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserListFilters(t *testing.T) {
	f := newFixture(t)
	f.user(t, "9111111111", "Asha Agrawal", true)
	f.user(t, "9222222222", "Ravi Goyal", false)

	res, err := f.svc.Users.List(f.ctx, UserFilter{Query: "agrawal"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "9111111111", res.Items[0].Phone)

	res, err = f.svc.Users.List(f.ctx, UserFilter{Verification: "unverified"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ravi Goyal", res.Items[0].Name())

	res, err = f.svc.Users.List(f.ctx, UserFilter{Role: "admin", Verification: "all"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, f.admin, res.Items[0].ID)
}

func TestUserToggles(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "9111111111", "Asha", false)

	got, err := f.svc.Users.ToggleVerification(f.ctx, f.admin, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	got, err = f.svc.Users.ToggleVerification(f.ctx, f.admin, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsVerified)

	got, err = f.svc.Users.ToggleAdmin(f.ctx, f.admin, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
	ok, err := f.svc.Users.IsAdmin(f.ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.svc.Users.Delete(f.ctx, f.admin, u.ID))
	_, err = f.svc.Users.Get(f.ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Users.FindByPhone(f.ctx, "9111111111")
	assert.ErrorIs(t, err, ErrUserNotFound)

	logs, err := f.svc.Audit.Recent(f.ctx, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 4)
}

func TestCandidatesAreVerifiedByName(t *testing.T) {
	f := newFixture(t)
	f.user(t, "9111111111", "Zoya", true)
	f.user(t, "9222222222", "Bhavna", true)
	f.user(t, "9333333333", "Chetan", false)

	got, err := f.svc.Users.Candidates(f.ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, u := range got {
		names = append(names, u.Name())
	}
	assert.Equal(t, []string{"Admin", "Bhavna", "Zoya"}, names)
}
