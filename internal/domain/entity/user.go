// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	TwoFactorSecret    string // Base32 TOTP secret; set on 2FA setup, armed on confirmation
	TwoFactorEnabled   bool
	EmailNotifications bool
	// RecoveryToken and its expiry are set while a password reset is
	// pending and cleared once the reset completes.
	RecoveryToken       *string
	RecoveryTokenExpiry *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
