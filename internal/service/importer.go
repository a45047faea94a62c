package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"community_admin/internal/domain"
	"community_admin/internal/spreadsheet"
	"community_admin/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxImportErrors caps the errors returned in an import report
const maxImportErrors = 10

// Member is one parsed spreadsheet row
type Member struct {
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	City     string `json:"city"`
	Gotra    string `json:"gotra"`
}

// Preview is the parse result shown before an import is confirmed
type Preview struct {
	Loaded  int      `json:"loaded"` // data rows read from the sheet
	Members []Member `json:"members"`
}

// ImportResult tallies an import
type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// Importer seeds approved_members from spreadsheets and verifies matching users
type Importer struct {
	st    *store.Store
	users *UserService
	audit *AuditLog
}

// Preview parses the first sheet of file. Rows with no phone are dropped.
func (im *Importer) Preview(filename string, file io.Reader) (*Preview, error) {
	recs, err := spreadsheet.Parse(filename, file)
	if err != nil {
		return nil, err
	}
	p := &Preview{Loaded: len(recs), Members: make([]Member, 0, len(recs))} // Loaded counts every data row
	for _, rec := range recs {
		m := Member{
			Phone:    rec.Lookup("Phone", "phone"),
			FullName: rec.Lookup("Full Name", "full_name", "name"),
			City:     rec.Lookup("City", "city"),
			Gotra:    rec.Lookup("Gotra", "gotra"),
		}
		if m.Phone == "" {
			continue // Phone is the member key
		}
		p.Members = append(p.Members, m)
	}
	return p, nil
}

// Import processes members one by one. A row already in approved_members is
// not a failure. Earlier rows stay imported when a later one fails.
func (im *Importer) Import(ctx context.Context, admin uuid.UUID, members []Member) (*ImportResult, error) {
	if len(members) == 0 {
		return nil, ErrNoImportData
	}
	res := &ImportResult{Errors: []string{}}
	for _, m := range members {
		if err := im.importOne(ctx, m); err != nil {
			res.Failed++
			if len(res.Errors) < maxImportErrors { // Keep the report short
				res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", m.Phone, err))
			}
			continue
		}
		res.Success++
	}
	logrus.WithFields(logrus.Fields{
		"success": res.Success,
		"failed":  res.Failed,
		"admin":   admin,
	}).Info("member import finished")
	im.audit.Record(ctx, admin, "import_members", "approved_member", uuid.Nil, map[string]any{
		"success": res.Success,
		"failed":  res.Failed,
	})
	return res, nil
}

func (im *Importer) importOne(ctx context.Context, m Member) error {
	phone := strings.TrimSpace(m.Phone)
	if phone == "" {
		return errors.New("phone is required")
	}
	row := &domain.ApprovedMember{
		Phone:    phone,
		FullName: optional(m.FullName),
		City:     optional(m.City),
		Gotra:    optional(m.Gotra),
	}
	if err := im.st.ApprovedMembers.Insert(ctx, row); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) { // Re-imports are fine
		return err
	}
	user, err := im.users.FindByPhone(ctx, phone)
	if errors.Is(err, ErrUserNotFound) {
		return nil // Member has not signed up yet
	}
	if err != nil {
		return err
	}
	return im.st.Users.Update(ctx, user.ID, map[string]any{"is_verified": true})
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
