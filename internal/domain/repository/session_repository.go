// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository is the session store: a durable, concurrency-safe mapping
// from token hash to session record with expiry. It may be shared across many
// concurrent connections; every method is safe for concurrent invocation.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the live session for a token hash.
	// An expired record is reported as ErrSessionExpired, not returned.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session for a token hash, ending it.
	// Deleting a token that has no record returns ErrSessionNotFound;
	// callers that need idempotent destruction treat that as success.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every session belonging to an account.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all expired session records and reports how
	// many were reclaimed. Called periodically by the background sweep.
	DeleteExpired(ctx context.Context) (int64, error)
}
