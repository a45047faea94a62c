package service

import (
	"context"
	"errors"
	"fmt"

	"community_admin/internal/domain"
	"community_admin/internal/listing"
	"community_admin/internal/store"

	"github.com/google/uuid"
)

// UserFilter selects the users list view
type UserFilter struct {
	Query        string // full name, phone or email
	Verification string // all, verified, unverified
	Role         string // all, admin, user
}

// UserService manages user verification and roles
type UserService struct {
	st    *store.Store
	audit *AuditLog
}

// List fetches every user, newest first, and filters them
func (s *UserService) List(ctx context.Context, f UserFilter) (listing.Result[domain.User], error) {
	rows, err := s.st.Users.Select(ctx, store.Query{Order: "created_at desc"}) // Full fetch, filtered in memory
	if err != nil {
		return listing.Result[domain.User]{}, fmt.Errorf("fetch users: %w", err)
	}
	return listing.Apply(rows,
		listing.Search(f.Query,
			func(u domain.User) string { return listing.Str(u.FullName) },
			func(u domain.User) string { return u.Phone },
			func(u domain.User) string { return listing.Str(u.Email) },
		),
		listing.Flag(f.Verification, "verified", "unverified", func(u domain.User) bool { return u.IsVerified }),
		listing.Flag(f.Role, "admin", "user", func(u domain.User) bool { return u.IsAdmin }),
	), nil
}

// Get loads one user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.st.Users.Get(ctx, id)
}

// FindByPhone loads the user owning phone
func (s *UserService) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u, err := s.st.Users.First(ctx, store.Query{Where: []store.Cond{store.Eq("phone", phone)}})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// IsAdmin reports whether id belongs to a console admin
func (s *UserService) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	u, err := s.st.Users.First(ctx, store.Query{
		Where:   []store.Cond{store.Eq("id", id)},
		Columns: []string{"id", "is_admin"},
	})
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}

// ToggleVerification flips is_verified
func (s *UserService) ToggleVerification(ctx context.Context, admin, id uuid.UUID) (*domain.User, error) {
	return flip(ctx, s.st.Users, s.audit, admin, id, "user", "is_verified", func(u *domain.User) bool { return u.IsVerified })
}

// ToggleAdmin flips is_admin
func (s *UserService) ToggleAdmin(ctx context.Context, admin, id uuid.UUID) (*domain.User, error) {
	return flip(ctx, s.st.Users, s.audit, admin, id, "user", "is_admin", func(u *domain.User) bool { return u.IsAdmin })
}

// Delete permanently removes the user row
func (s *UserService) Delete(ctx context.Context, admin, id uuid.UUID) error {
	return remove(ctx, s.st.Users, s.audit, admin, id, "user")
}

// Candidates lists verified users, by name, for linking to a post holder
func (s *UserService) Candidates(ctx context.Context) ([]domain.User, error) {
	return s.st.Users.Select(ctx, store.Query{
		Where:   []store.Cond{store.Eq("is_verified", true)},
		Order:   "full_name asc",
		Columns: []string{"id", "full_name", "phone", "photo_url"},
	})
}
