// Package service implements the console's operations on top of the store.
// Every mutation is attributed to the acting admin and recorded in the audit log.
package service

import (
	"time"

	"community_admin/internal/store"

	"github.com/redis/go-redis/v9"
)

var now = time.Now // replaced in tests

// Services bundles every console operation over one store and one Redis client
type Services struct {
	Audit           *AuditLog
	Users           *UserService
	Matrimonial     *MatrimonialService
	Jobs            *JobService
	Events          *EventService
	BloodDonors     *BloodDonorService
	Donations       *DonationService
	PostHolders     *PostHolderService
	ContactRequests *ContactRequestService
	Deletions       *DeletionService
	Importer        *Importer
	Dashboard       *Dashboard
	Exporter        *Exporter
	Settings        *SettingsStore
	Sessions        *Sessions
}

// New wires every service
func New(st *store.Store, rdb redis.Cmdable) *Services {
	audit := NewAuditLog(st)
	users := &UserService{st: st, audit: audit}
	return &Services{
		Audit:           audit,
		Users:           users,
		Matrimonial:     NewMatrimonialService(st, audit),
		Jobs:            NewJobService(st, audit),
		Events:          NewEventService(st, audit),
		BloodDonors:     &BloodDonorService{st: st, audit: audit},
		Donations:       &DonationService{st: st, audit: audit},
		PostHolders:     &PostHolderService{st: st, audit: audit},
		ContactRequests: &ContactRequestService{st: st},
		Deletions:       &DeletionService{st: st, users: users, audit: audit, rdb: rdb},
		Importer:        &Importer{st: st, users: users, audit: audit},
		Dashboard:       &Dashboard{st: st},
		Exporter:        &Exporter{st: st},
		Settings:        &SettingsStore{rdb: rdb, audit: audit},
		Sessions:        NewSessions(rdb),
	}
}
