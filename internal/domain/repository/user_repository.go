// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when a unique index rejects an insert.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository manages identity records.
type UserRepository interface {
	// Create persists a new user. The caller is responsible for having
	// hashed the password and assigned a UserID.
	Create(ctx context.Context, user *entity.User) error

	// FindByUserID retrieves a user by business key.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)

	// FindByEmail retrieves a user by login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrPhone reports whether any user already holds the given
	// email or phone number. Used to enforce uniqueness at registration.
	ExistsByEmailOrPhone(ctx context.Context, email, phoneNumber string) (bool, error)
}
