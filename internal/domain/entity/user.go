// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and own calculations.
// PasswordHash only ever holds a one-way digest.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Username     string     // Unique login name.
	Email        string     // Unique contact email, also accepted as a login identifier.
	FirstName    string     // Given name shown in the UI.
	LastName     string     // Family name shown in the UI.
	PasswordHash string     // Salted password digest.
	IsActive     bool       // Inactive accounts are refused by authenticated endpoints.
	IsVerified   bool       // Set once the email address has been confirmed.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
	LastLogin    *time.Time // Timestamp of the last successful authentication, nil if never.
}

// NewUser builds a freshly registered, active and unverified account.
func NewUser(username, email, firstName, lastName, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsVerified:   false,
	}
}

// MarkLoggedIn records a successful authentication at the given instant.
// LastLogin only ever moves forward, even if the clock does not.
func (u *User) MarkLoggedIn(at time.Time) {
	at = at.UTC().Truncate(time.Microsecond)
	if u.LastLogin != nil && !at.After(*u.LastLogin) {
		at = u.LastLogin.Add(time.Microsecond)
	}
	u.LastLogin = &at
}
