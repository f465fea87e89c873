// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches a lookup.
var ErrUserNotFound = domainerrors.ErrUserNotFound

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user whose username equals
	// username or whose email equals email. Lookups go to the primary.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every mutable column of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
