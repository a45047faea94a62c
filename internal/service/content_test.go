package service

import (
	"testing"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateUpdateAndToggles(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Events.Create(f.ctx, f.admin, EventInput{Title: "Mela", EventType: "concert"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	ev, err := f.svc.Events.Create(f.ctx, f.admin, EventInput{Title: " Annual Mela "})
	require.NoError(t, err)
	assert.Equal(t, "Annual Mela", ev.Title)
	assert.Equal(t, domain.EventTypeEvent, ev.EventType)
	assert.Equal(t, domain.StatusApproved, ev.Status)
	assert.True(t, ev.IsVisible)
	require.NotNil(t, ev.PostedBy)
	assert.Equal(t, f.admin, *ev.PostedBy)

	when := time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC)
	up, err := f.svc.Events.Update(f.ctx, f.admin, ev.ID, EventInput{
		Title:            "Annual Mela 2026",
		EventType:        domain.EventTypeFestival,
		EventDate:        &when,
		IsAnnouncement:   true,
		AnnouncementText: storetest.Ptr("Stalls open at 6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Annual Mela 2026", up.Title)
	assert.True(t, up.IsAnnouncement)
	assert.Equal(t, "Admin", up.Poster.Name())

	up, err = f.svc.Events.ToggleFeatured(f.ctx, f.admin, ev.ID)
	require.NoError(t, err)
	assert.True(t, up.IsFeatured)
	up, err = f.svc.Events.ToggleVisibility(f.ctx, f.admin, ev.ID)
	require.NoError(t, err)
	assert.False(t, up.IsVisible)

	res, err := f.svc.Events.List(f.ctx, EventFilter{Status: "approved", Type: "announcement"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	res, err = f.svc.Events.List(f.ctx, EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	require.NoError(t, f.svc.Events.Delete(f.ctx, f.admin, ev.ID))
	_, err = f.svc.Events.Get(f.ctx, ev.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatrimonialListJoinsOwner(t *testing.T) {
	f := newFixture(t)
	asha := f.user(t, "9111111111", "Asha", true)
	ravi := f.user(t, "9222222222", "Ravi", true)
	require.NoError(t, f.st.Matrimonial.Insert(f.ctx, &domain.MatrimonialProfile{UserID: asha.ID, Gender: "Female", City: storetest.Ptr("Jabalpur"), Status: domain.StatusPending}))
	require.NoError(t, f.st.Matrimonial.Insert(f.ctx, &domain.MatrimonialProfile{UserID: ravi.ID, Gender: "male", Status: domain.StatusPending, Photos: []string{"a.jpg"}}))

	res, err := f.svc.Matrimonial.List(f.ctx, MatrimonialFilter{Gender: "female"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Asha", res.Items[0].User.Name())
	assert.Equal(t, "9111111111", res.Items[0].User.Phone)

	res, err = f.svc.Matrimonial.List(f.ctx, MatrimonialFilter{Query: "ravi"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, []string{"a.jpg"}, []string(res.Items[0].Photos))

	got, err := f.svc.Matrimonial.Approve(f.ctx, f.admin, res.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.User.Name())
	res, err = f.svc.Matrimonial.List(f.ctx, MatrimonialFilter{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestPostHolders(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "9111111111", "Asha", true)

	_, err := f.svc.PostHolders.Create(f.ctx, f.admin, PostHolderInput{Designation: "Chairman"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	second, err := f.svc.PostHolders.Create(f.ctx, f.admin, PostHolderInput{Designation: "Secretary", DisplayOrder: storetest.Ptr(2)})
	require.NoError(t, err)
	first, err := f.svc.PostHolders.Create(f.ctx, f.admin, PostHolderInput{Designation: "President", UserID: &u.ID, DisplayOrder: storetest.Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, "Asha", first.User.Name())

	list, err := f.svc.PostHolders.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "President", list[0].Designation)

	up, err := f.svc.PostHolders.Update(f.ctx, f.admin, second.ID, PostHolderInput{Designation: "Treasurer", DisplayOrder: storetest.Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "Treasurer", up.Designation)

	list, err = f.svc.PostHolders.List(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Treasurer", list[0].Designation)

	require.NoError(t, f.svc.PostHolders.Delete(f.ctx, f.admin, first.ID))
	list, err = f.svc.PostHolders.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestContactRequestStats(t *testing.T) {
	f := newFixture(t)
	for _, s := range []domain.Status{domain.StatusPending, domain.StatusAccepted, domain.StatusAccepted, domain.StatusRejected} {
		require.NoError(t, f.st.ContactRequests.Insert(f.ctx, &domain.ContactRequest{Status: s, CreatedAt: time.Now()}))
	}

	res, err := f.svc.ContactRequests.List(f.ctx, "accepted")
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, StatusCounts{Total: 4, Pending: 1, Accepted: 2, Rejected: 1}, res.Stats)

	res, err = f.svc.ContactRequests.List(f.ctx, "all")
	require.NoError(t, err)
	assert.Len(t, res.Items, 4)
}
