package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

var donorUser = store.Preload{Assoc: "User", Columns: []string{"id", "full_name", "phone", "email"}}

// DonorCSVHeaders is the header line of the blood donor export
var DonorCSVHeaders = []string{"Name", "Phone", "Email", "Blood Group", "City", "Available", "Last Donation"}

// BloodDonorFilter selects the blood donor list view
type BloodDonorFilter struct {
	Query        string // donor name, phone or city
	BloodGroup   string
	City         string
	Availability string // all, available, unavailable
}

// BloodDonorService tracks the donor registry
type BloodDonorService struct {
	st    *store.Store
	audit *AuditLog
}

// List fetches every donor with their user, newest first, and filters them
func (s *BloodDonorService) List(ctx context.Context, f BloodDonorFilter) (listing.Result[domain.BloodDonor], error) {
	rows, err := s.st.BloodDonors.Select(ctx, store.Query{Order: "created_at desc", Preloads: []store.Preload{donorUser}}) // Full fetch, filtered in memory
	if err != nil {
		return listing.Result[domain.BloodDonor]{}, fmt.Errorf("fetch blood donors: %w", err)
	}
	return listing.Apply(rows,
		listing.Search(f.Query,
			func(d domain.BloodDonor) string { return d.User.Name() },
			func(d domain.BloodDonor) string {
				if d.User == nil {
					return ""
				}
				return d.User.Phone
			},
			func(d domain.BloodDonor) string { return d.City },
		),
		listing.Match(f.BloodGroup, func(d domain.BloodDonor) string { return d.BloodGroup }),
		listing.Match(f.City, func(d domain.BloodDonor) string { return d.City }),
		listing.Flag(f.Availability, "available", "unavailable", func(d domain.BloodDonor) bool { return d.IsAvailable }),
	), nil
}

// Cities returns the distinct donor cities, sorted, for the city select
func (s *BloodDonorService) Cities(ctx context.Context) ([]string, error) {
	rows, err := s.st.BloodDonors.Select(ctx, store.Query{Columns: []string{"id", "city"}}) // Only the city column
	if err != nil {
		return nil, fmt.Errorf("fetch donor cities: %w", err)
	}
	seen := make(map[string]struct{}, len(rows))
	cities := make([]string, 0, len(rows))
	for _, d := range rows {
		if _, ok := seen[d.City]; ok || d.City == "" {
			continue
		}
		seen[d.City] = struct{}{}
		cities = append(cities, d.City)
	}
	sort.Strings(cities) // Stable option order
	return cities, nil
}

// ToggleAvailability flips is_available
func (s *BloodDonorService) ToggleAvailability(ctx context.Context, admin, id uuid.UUID) (*domain.BloodDonor, error) {
	return flip(ctx, s.st.BloodDonors, s.audit, admin, id, "blood_donor", "is_available", func(d *domain.BloodDonor) bool { return d.IsAvailable })
}

// SetLastDonation records the donor's last donation date; availability is left untouched
func (s *BloodDonorService) SetLastDonation(ctx context.Context, admin, id uuid.UUID, date *time.Time) (*domain.BloodDonor, error) {
	if _, err := s.st.BloodDonors.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("load blood donor: %w", err)
	}
	if err := s.st.BloodDonors.Update(ctx, id, map[string]any{"last_donation_date": date}); err != nil {
		return nil, fmt.Errorf("update blood donor: %w", err)
	}
	s.audit.Record(ctx, admin, "set_last_donation", "blood_donor", id, map[string]any{"date": date})
	return s.st.BloodDonors.Get(ctx, id, donorUser)
}

// Delete permanently removes a donor entry
func (s *BloodDonorService) Delete(ctx context.Context, admin, id uuid.UUID) error {
	return remove(ctx, s.st.BloodDonors, s.audit, admin, id, "blood_donor")
}

// DonorCSVRows renders donors in DonorCSVHeaders order
func DonorCSVRows(donors []domain.BloodDonor) [][]string {
	rows := make([][]string, 0, len(donors))
	for _, d := range donors {
		name, phone, email := "N/A", "N/A", "N/A"
		if d.User != nil {
			name = orNA(listing.Str(d.User.FullName))
			phone = orNA(d.User.Phone)
			email = orNA(listing.Str(d.User.Email))
		}
		available := "No"
		if d.IsAvailable {
			available = "Yes"
		}
		last := "Never"
		if d.LastDonationDate != nil {
			last = d.LastDonationDate.Format("2006-01-02")
		}
		rows = append(rows, []string{name, phone, email, d.BloodGroup, d.City, available, last})
	}
	return rows
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
