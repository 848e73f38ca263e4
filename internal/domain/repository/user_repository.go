// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIdentifier retrieves a single user by username or email.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of user accounts.
	Count(ctx context.Context) (int64, error)
}
