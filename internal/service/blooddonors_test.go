package service

import (
	"testing"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) donor(t *testing.T, u *domain.User, group, city string, available bool) *domain.BloodDonor {
	t.Helper()
	d := &domain.BloodDonor{UserID: u.ID, BloodGroup: group, City: city, IsAvailable: available, CreatedAt: time.Now()}
	require.NoError(t, f.st.BloodDonors.Insert(f.ctx, d))
	return d
}

func TestAvailabilityAndLastDonationAreIndependent(t *testing.T) {
	f := newFixture(t)
	d := f.donor(t, f.user(t, "9111111111", "Asha", true), "O+", "Jabalpur", true)

	got, err := f.svc.BloodDonors.ToggleAvailability(f.ctx, f.admin, d.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.Nil(t, got.LastDonationDate)

	when := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	got, err = f.svc.BloodDonors.SetLastDonation(f.ctx, f.admin, d.ID, &when)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	require.NotNil(t, got.LastDonationDate)
	assert.Equal(t, "2026-01-10", got.LastDonationDate.Format("2006-01-02"))
	require.NotNil(t, got.User)
	assert.Equal(t, "Asha", got.User.Name())
}

func TestBloodDonorListAndCities(t *testing.T) {
	f := newFixture(t)
	f.donor(t, f.user(t, "9111111111", "Asha", true), "O+", "Jabalpur", true)
	f.donor(t, f.user(t, "9222222222", "Ravi", true), "A-", "Bhopal", false)
	f.donor(t, f.user(t, "9333333333", "Meena", false), "O+", "Bhopal", true)

	res, err := f.svc.BloodDonors.List(f.ctx, BloodDonorFilter{BloodGroup: "O+", City: "all", Availability: "available"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Filtered)

	res, err = f.svc.BloodDonors.List(f.ctx, BloodDonorFilter{Query: "9222"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ravi", res.Items[0].User.Name())

	cities, err := f.svc.BloodDonors.Cities(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bhopal", "Jabalpur"}, cities)
}

func TestDonorCSVRows(t *testing.T) {
	when := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	rows := DonorCSVRows([]domain.BloodDonor{
		{User: &domain.User{Phone: "9111111111", FullName: storetest.Ptr("Asha")}, BloodGroup: "O+", City: "Jabalpur", IsAvailable: true, LastDonationDate: &when},
		{BloodGroup: "B+", City: "Katni"},
	})
	assert.Equal(t, []string{"Asha", "9111111111", "N/A", "O+", "Jabalpur", "Yes", "2025-12-01"}, rows[0])
	assert.Equal(t, []string{"N/A", "N/A", "N/A", "B+", "Katni", "No", "Never"}, rows[1])
}
