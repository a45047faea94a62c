package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BloodGroups are the eight canonical groups a donor may register with
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Designations are the office titles a post holder may hold
var Designations = []string{
	"President",
	"Senior Vice President",
	"Vice President",
	"Women Vice President",
	"Secretary",
	"Treasurer",
	"Joint Secretary",
	"Secretary (Publicity)",
	"Deputy Secretary",
}

// BloodDonor Model
type BloodDonor struct {
	Identity
	UserID           uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`  // Donor account
	User             *User      `gorm:"foreignKey:UserID" json:"users,omitempty"` // Donor account
	BloodGroup       string     `gorm:"not null" json:"blood_group"`              // One of BloodGroups
	City             string     `gorm:"not null" json:"city"`                     // Free-text city
	IsAvailable      bool       `gorm:"not null" json:"is_available"`             // Willing to donate now
	LastDonationDate *time.Time `json:"last_donation_date"`                       // Set independently of availability
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (BloodDonor) TableName() string { return "blood_donors" }

// Donation Model. Amount is in the unit of record and rendered as currency.
type Donation struct {
	Identity
	DonorName     string     `gorm:"not null" json:"donor_name"`    // Name as entered by the donor
	Amount        float64    `gorm:"not null" json:"amount"`        // Amount in rupees
	TransactionID *string    `json:"transaction_id"`                // Payment reference
	UPIRef        *string    `gorm:"column:upi_ref" json:"upi_ref"` // UPI reference
	ReceiptURL    *string    `gorm:"column:receipt_url" json:"receipt_url"`
	DonatedAt     time.Time  `gorm:"index;not null" json:"donated_at"` // Payment date
	IsVerified    bool       `gorm:"not null" json:"is_verified"`      // Checked against the bank statement
	VerifiedBy    *uuid.UUID `gorm:"type:uuid" json:"verified_by"`     // Cleared on unverify
	VerifiedAt    *time.Time `json:"verified_at"`                      // Cleared on unverify
	AdminNotes    *string    `json:"admin_notes"`
}

func (Donation) TableName() string { return "donations" }

// PostHolder Model, optionally linked to a user account
type PostHolder struct {
	Identity
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Optional linked account
	User         *User      `gorm:"foreignKey:UserID" json:"users,omitempty"`
	Designation  string     `gorm:"not null" json:"designation"` // One of Designations
	TermStart    *time.Time `json:"term_start"`
	TermEnd      *time.Time `json:"term_end"`
	Bio          *string    `json:"bio"`
	DisplayOrder *int       `json:"display_order"` // Ascending list order
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (PostHolder) TableName() string { return "post_holders" }

// DeletionRequest Model
type DeletionRequest struct {
	Identity
	Phone       string     `gorm:"not null;index" json:"phone"` // Identifies the account to purge
	Email       *string    `json:"email"`
	Reason      *string    `json:"reason"`
	Status      Status     `gorm:"not null;index" json:"status"`       // pending, approved or rejected
	RequestedAt time.Time  `gorm:"not null;index" json:"requested_at"` // Submission time
	ProcessedAt *time.Time `json:"processed_at"`                       // Set when an admin acts
	ProcessedBy *uuid.UUID `gorm:"type:uuid" json:"processed_by"`      // Acting admin
	AdminNotes  *string    `json:"admin_notes"`
}

func (DeletionRequest) TableName() string { return "deletion_requests" }

// ApprovedMember Model: a pre-vetted seed record used to auto-verify sign-ups
type ApprovedMember struct {
	Identity
	Phone      string    `gorm:"uniqueIndex;not null" json:"phone"` // Unique, duplicates are skipped on import
	FullName   *string   `json:"full_name"`
	City       *string   `json:"city"`
	Gotra      *string   `json:"gotra"`
	ImportedAt time.Time `gorm:"autoCreateTime" json:"imported_at"` // Set on insert
}

func (ApprovedMember) TableName() string { return "approved_members" }

// AdminLog Model records every console mutation
type AdminLog struct {
	Identity
	AdminID    *uuid.UUID        `gorm:"type:uuid;index" json:"admin_id"` // Acting admin
	Action     string            `gorm:"not null" json:"action"`          // approved, rejected, delete, toggle_<column> ...
	TargetType *string           `json:"target_type"`                     // Table or entity kind
	TargetID   *string           `json:"target_id"`                       // Row id
	Details    datatypes.JSONMap `json:"details"`                         // JSON object
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
}

func (AdminLog) TableName() string { return "admin_logs" }

// Models lists every table the console reads or writes
func Models() []any {
	return []any{
		&User{}, &MatrimonialProfile{}, &Event{}, &Job{}, &BloodDonor{}, &Donation{},
		&PostHolder{}, &ContactRequest{}, &DeletionRequest{}, &ApprovedMember{}, &AdminLog{},
	}
}
