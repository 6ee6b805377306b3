// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// ErrUserNotFound is returned when no active user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindActiveByID retrieves an active user by primary key.
	FindActiveByID(ctx context.Context, id int64) (*entity.User, error)

	// FindActiveByEmail retrieves an active user by email address.
	FindActiveByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether any user, active or not, already owns the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and fills in the generated fields.
	Create(ctx context.Context, user *entity.User) error
}
