// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user directory: persistent storage of accounts.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll retrieves every account, ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single account by exact username match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new account. The username carries a uniqueness
	// constraint; a concurrent insert of the same name surfaces as a
	// domain-level conflict error, never as a raw database error.
	Create(ctx context.Context, user *entity.User) error
}
