package models

import (
	"fmt"
	"time"
)

const (
	MaxEmailLength     = 50
	MaxPasswordLength  = 25
	MaxTelephoneLength = 12
)

// User is a caregiver account.
type User struct {
	ID           uint     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email        string   `gorm:"column:email;size:50;uniqueIndex;not null"`
	PasswordHash string   `gorm:"column:password;size:60;not null"`
	Telephone    string   `gorm:"column:telephone;size:12"`
	Clients      []Client `gorm:"foreignKey:CaregiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// AuthenticatedAt is set by the session layer once a token for this
	// user has been verified. It is never persisted.
	AuthenticatedAt *time.Time `gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

// GetID returns the store-assigned identifier used as the session identity.
func (user User) GetID() uint {
	return user.ID
}

func (user User) IsAuthenticated() bool {
	return user.ID != 0 && user.AuthenticatedAt != nil
}

// IsAnonymous is always false: every session belongs to a caregiver.
func (user User) IsAnonymous() bool {
	return false
}

func (user User) String() string {
	return fmt.Sprintf("<Caregiver user_id=%d, email=%s, phone=%s>", user.ID, user.Email, user.Telephone)
}
