package entity

import (
	"strings"
	"time"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
)

// User is an authenticated customer of the orchestrator
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Unique, stored lower-cased
	PasswordHash string    // Never exposed over the API
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user from an email and an already-hashed password
func NewUser(email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
