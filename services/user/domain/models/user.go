package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender codes carried on the profile. Zero means undisclosed.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// User is the account aggregate. Either Email or Phone is always present;
// both identify the account at login.
type User struct {
	ID           uuid.UUID
	Email        *string
	Phone        *string
	PasswordHash string
	Nickname     string
	Avatar       *string
	Gender       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser constructs a User with a generated ID and current timestamps.
func NewUser(email, phone *string, passwordHash, nickname string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Nickname:     nickname,
		Gender:       GenderUnknown,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
