package store

import (
	"community_admin/internal/domain" // Table models

	"gorm.io/gorm" // GORM ORM library
)

// Store bundles a Table for every console table over one shared handle
type Store struct {
	DB               *gorm.DB
	Users            *Table[domain.User]
	Matrimonial      *Table[domain.MatrimonialProfile]
	Events           *Table[domain.Event]
	Jobs             *Table[domain.Job]
	BloodDonors      *Table[domain.BloodDonor]
	Donations        *Table[domain.Donation]
	PostHolders      *Table[domain.PostHolder]
	ContactRequests  *Table[domain.ContactRequest]
	DeletionRequests *Table[domain.DeletionRequest]
	ApprovedMembers  *Table[domain.ApprovedMember]
	AdminLogs        *Table[domain.AdminLog]
}

// New wires every table to db
func New(db *gorm.DB) *Store {
	return &Store{
		DB:               db, // Raw handle for migrations and tests
		Users:            NewTable[domain.User](db),
		Matrimonial:      NewTable[domain.MatrimonialProfile](db),
		Events:           NewTable[domain.Event](db),
		Jobs:             NewTable[domain.Job](db),
		BloodDonors:      NewTable[domain.BloodDonor](db),
		Donations:        NewTable[domain.Donation](db),
		PostHolders:      NewTable[domain.PostHolder](db),
		ContactRequests:  NewTable[domain.ContactRequest](db),
		DeletionRequests: NewTable[domain.DeletionRequest](db),
		ApprovedMembers:  NewTable[domain.ApprovedMember](db),
		AdminLogs:        NewTable[domain.AdminLog](db),
	}
}
