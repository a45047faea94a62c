package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is the UUID primary key shared by every table
type Identity struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

// BeforeCreate assigns an ID when the caller did not
func (m *Identity) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// User Model
type User struct {
	Identity
	GoogleID   *string   `json:"google_id"`                         // Set by the mobile app sign-in
	Phone      string    `gorm:"uniqueIndex;not null" json:"phone"` // Unique login key
	FullName   *string   `json:"full_name"`                         // Display name
	Email      *string   `json:"email"`                             // Optional contact
	PhotoURL   *string   `gorm:"column:photo_url" json:"photo_url"` // Profile photo
	City       *string   `json:"city"`
	Occupation *string   `json:"occupation"`
	IsVerified bool      `gorm:"not null" json:"is_verified"` // Verified community member
	IsAdmin    bool      `gorm:"not null" json:"is_admin"`    // Gates console access
	CreatedAt  time.Time `gorm:"index" json:"created_at"`     // Sign-up time
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Name returns the display name or an empty string
func (u *User) Name() string {
	if u == nil || u.FullName == nil {
		return ""
	}
	return *u.FullName
}
