package service

import (
	"testing"
	"time"

	"community_admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardLoad(t *testing.T) {
	f := newFixture(t)
	f.user(t, "9111111111", "Asha", false)
	f.job(t, "Clerk", domain.StatusPending)
	f.job(t, "Driver", domain.StatusApproved)
	f.event(t, "Holi", nil)
	require.NoError(t, f.st.Matrimonial.Insert(f.ctx, &domain.MatrimonialProfile{UserID: f.admin, Gender: "male", Status: domain.StatusPending}))
	for i, amount := range []float64{100, 250, 50} {
		f.donation(t, "Donor", amount, time.Now().Add(time.Duration(-i)*time.Hour))
	}

	s, err := f.svc.Dashboard.Load(f.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, s.TotalUsers)
	assert.EqualValues(t, 1, s.VerifiedUsers)
	assert.EqualValues(t, 2, s.TotalJobs)
	assert.EqualValues(t, 1, s.PendingJobs)
	assert.EqualValues(t, 1, s.PendingEvents)
	assert.EqualValues(t, 1, s.PendingMatrimonial)
	assert.EqualValues(t, 3, s.PendingApprovals)
	assert.Equal(t, 400.0, s.TotalDonations)
	assert.Equal(t, []ChartPoint{{"Verified", 1}, {"Unverified", 1}}, s.UserVerification)
	assert.Len(t, s.PendingByType, 3)
	assert.Len(t, s.RecentUsers, 2)
	assert.Len(t, s.RecentDonations, 3)
	assert.Equal(t, 100.0, s.RecentDonations[0].Amount)
}
