package service

import (
	"errors"

	"community_admin/internal/store"
)

var (
	// ErrNotFound is returned when the addressed row does not exist
	ErrNotFound = store.ErrNotFound
	// ErrRejectionReasonRequired is returned when a rejection needing a reason has none
	ErrRejectionReasonRequired = errors.New("Please provide a reason for rejection")
	// ErrInvalidTransition is returned when a row's status cannot move to the requested value
	ErrInvalidTransition = errors.New("status cannot change from its current value")
	// ErrUserNotFound is returned when no user owns the given phone number
	ErrUserNotFound = errors.New("user not found")
	// ErrNoImportData is returned when an import carries no members
	ErrNoImportData = errors.New("No data to import")
	// ErrInvalidInput is returned for payloads that fail validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrRateLimited is returned when a public caller exceeds its quota
	ErrRateLimited = errors.New("Too many requests, please try again later")
)
