package service

import (
	"testing"

	"community_admin/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectRequiresReasonBeforeLoading(t *testing.T) {
	f := newFixture(t)

	// the id does not exist: a missing reason must be reported first
	_, err := f.svc.Jobs.Reject(f.ctx, f.admin, uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrRejectionReasonRequired)
	_, err = f.svc.Matrimonial.Reject(f.ctx, f.admin, uuid.New(), "")
	assert.ErrorIs(t, err, ErrRejectionReasonRequired)

	_, err = f.svc.Jobs.Reject(f.ctx, f.admin, uuid.New(), "spam")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveIsIdempotent(t *testing.T) {
	f := newFixture(t)
	j := f.job(t, "Accountant", domain.StatusPending)

	got, err := f.svc.Jobs.Approve(f.ctx, f.admin, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, f.admin, *got.ApprovedBy)

	again, err := f.svc.Jobs.Approve(f.ctx, f.admin, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, again.Status)

	_, err = f.svc.Jobs.Reject(f.ctx, f.admin, j.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := f.st.Jobs.Get(f.ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
	assert.EqualValues(t, 2, f.auditCount(t))
}

func TestRejectStoresNotes(t *testing.T) {
	f := newFixture(t)
	j := f.job(t, "Driver", domain.StatusPending)

	got, err := f.svc.Jobs.Reject(f.ctx, f.admin, j.ID, " incomplete details ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	require.NotNil(t, got.ApprovalNotes)
	assert.Equal(t, "incomplete details", *got.ApprovalNotes)
}

func TestEventApprovalMakesVisible(t *testing.T) {
	f := newFixture(t)
	e := f.event(t, "Diwali Milan", nil)
	assert.False(t, e.IsVisible)

	got, err := f.svc.Events.Approve(f.ctx, f.admin, e.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVisible)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestEventRejectionWithoutNotes(t *testing.T) {
	f := newFixture(t)
	e := f.event(t, "Garba", nil)

	got, err := f.svc.Events.Reject(f.ctx, f.admin, e.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Nil(t, got.ApprovalNotes)
	assert.False(t, got.IsVisible)
}
