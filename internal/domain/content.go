package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event types accepted by the console
const (
	EventTypeEvent    = "event"
	EventTypeFestival = "festival"
	EventTypeMeeting  = "meeting"
)

// EventTypes lists every valid event_type value
var EventTypes = []string{EventTypeEvent, EventTypeFestival, EventTypeMeeting}

// MatrimonialProfile Model
type MatrimonialProfile struct {
	Identity
	UserID         uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`  // Owner
	User           *User                       `gorm:"foreignKey:UserID" json:"users,omitempty"` // Owner account
	Gender         string                      `gorm:"not null" json:"gender"`                   // male or female
	Age            *int                        `json:"age"`
	Education      *string                     `json:"education"`
	Occupation     *string                     `json:"occupation"`
	City           *string                     `json:"city"`
	Gotra          *string                     `json:"gotra"`
	FamilyDetails  *string                     `json:"family_details"`
	Photos         datatypes.JSONSlice[string] `json:"photos"` // JSON array of image URLs
	HoroscopeURL   *string                     `gorm:"column:horoscope_url" json:"horoscope_url"`
	AdditionalInfo *string                     `json:"additional_info"`
	Status         Status                      `gorm:"not null;index" json:"status"` // pending, approved or rejected
	ApprovedBy     *uuid.UUID                  `gorm:"type:uuid" json:"approved_by"` // Reviewing admin
	ApprovalNotes  *string                     `json:"approval_notes"`               // Reason given on rejection
	CreatedAt      time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (MatrimonialProfile) TableName() string { return "matrimonial_profiles" }

func (p MatrimonialProfile) ReviewStatus() Status { return p.Status }

// Event Model
type Event struct {
	Identity
	Title            string     `gorm:"not null" json:"title"` // Event title
	Description      *string    `json:"description"`
	EventDate        *time.Time `json:"event_date"` // Scheduled date
	PosterURL        *string    `gorm:"column:poster_url" json:"poster_url"`
	PostedBy         *uuid.UUID `gorm:"type:uuid;index" json:"posted_by"`           // Author, admin for console-created events
	Poster           *User      `gorm:"foreignKey:PostedBy" json:"users,omitempty"` // Author account
	Status           Status     `gorm:"not null;index" json:"status"`
	EventType        string     `gorm:"not null" json:"event_type"`      // event, festival or meeting
	IsAnnouncement   bool       `gorm:"not null" json:"is_announcement"` // Shown in the announcements strip
	AnnouncementText *string    `json:"announcement_text"`
	IsVisible        bool       `gorm:"not null" json:"is_visible"`  // Hidden events stay in the console only
	IsFeatured       bool       `gorm:"not null" json:"is_featured"` // Pinned on the home screen
	DisplayOrder     int        `gorm:"not null" json:"display_order"`
	ApprovedBy       *uuid.UUID `gorm:"type:uuid" json:"approved_by"` // Reviewing admin
	ApprovalNotes    *string    `json:"approval_notes"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Event) TableName() string { return "events" }

func (e Event) ReviewStatus() Status { return e.Status }

// Job Model
type Job struct {
	Identity
	Title         string     `gorm:"not null" json:"title"` // Job title
	Description   *string    `json:"description"`
	Location      *string    `json:"location"` // Free-text location
	ContactInfo   *string    `json:"contact_info"`
	PostedBy      *uuid.UUID `gorm:"type:uuid;index" json:"posted_by"`           // Author
	Poster        *User      `gorm:"foreignKey:PostedBy" json:"users,omitempty"` // Author account
	Status        Status     `gorm:"not null;index" json:"status"`               // pending, approved or rejected
	ApprovedBy    *uuid.UUID `gorm:"type:uuid" json:"approved_by"`               // Reviewing admin
	ApprovalNotes *string    `json:"approval_notes"`                             // Reason given on rejection
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

func (j Job) ReviewStatus() Status { return j.Status }

// ContactRequest Model, read-only from the console
type ContactRequest struct {
	Identity
	ProfileID   uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`   // Matrimonial profile owner
	RequesterID uuid.UUID `gorm:"type:uuid;index;not null" json:"requester_id"` // User asking for contact details
	Status      Status    `gorm:"not null" json:"status"`                       // pending, accepted or rejected
	CreatedAt   time.Time `json:"created_at"`
}

func (ContactRequest) TableName() string { return "contact_requests" }
