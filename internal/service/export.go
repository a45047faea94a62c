package service

import (
	"context"

	"community_admin/internal/domain"
	"community_admin/internal/store"

	"github.com/sirupsen/logrus"
)

// Backup is a full dump of the console tables. A table that could not be
// read is left nil and omitted from the encoded document.
type Backup struct {
	Users               *[]domain.User               `json:"users,omitempty"`
	MatrimonialProfiles *[]domain.MatrimonialProfile `json:"matrimonial_profiles,omitempty"`
	Events              *[]domain.Event              `json:"events,omitempty"`
	Jobs                *[]domain.Job                `json:"jobs,omitempty"`
	BloodDonors         *[]domain.BloodDonor         `json:"blood_donors,omitempty"`
	Donations           *[]domain.Donation           `json:"donations,omitempty"`
	PostHolders         *[]domain.PostHolder         `json:"post_holders,omitempty"`
	ApprovedMembers     *[]domain.ApprovedMember     `json:"approved_members,omitempty"`
}

// Exporter dumps tables for backups
type Exporter struct {
	st *store.Store
}

// Export reads each table in turn
func (e *Exporter) Export(ctx context.Context) *Backup {
	var b Backup // Tables are read one after another
	dump(ctx, e.st.Users, "users", &b.Users)
	dump(ctx, e.st.Matrimonial, "matrimonial_profiles", &b.MatrimonialProfiles)
	dump(ctx, e.st.Events, "events", &b.Events)
	dump(ctx, e.st.Jobs, "jobs", &b.Jobs)
	dump(ctx, e.st.BloodDonors, "blood_donors", &b.BloodDonors)
	dump(ctx, e.st.Donations, "donations", &b.Donations)
	dump(ctx, e.st.PostHolders, "post_holders", &b.PostHolders)
	dump(ctx, e.st.ApprovedMembers, "approved_members", &b.ApprovedMembers)
	return &b
}

func dump[T any](ctx context.Context, table *store.Table[T], name string, dst **[]T) {
	rows, err := table.Select(ctx, store.Query{}) // Whole table
	if err != nil {
		logrus.WithFields(logrus.Fields{"table": name, "error": err}).Warn("skipping table in export")
		return // Leave the field nil
	}
	*dst = &rows
}
