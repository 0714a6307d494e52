// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// CreateSession mints a session for a user and returns the raw token
	// destined for the client cookie alongside the stored record.
	CreateSession(ctx context.Context, user *entity.User) (*entity.Session, string, error)

	// Authenticate resolves a raw cookie token to its live session.
	Authenticate(ctx context.Context, rawToken string) (*entity.Session, error)

	// DestroySession ends the session behind a raw token. It reports whether
	// a live session was actually found, so callers can distinguish a real
	// logout from a no-op.
	DestroySession(ctx context.Context, rawToken string) (bool, error)

	// DestroySessionsForUser ends every session a user holds.
	DestroySessionsForUser(ctx context.Context, userID uuid.UUID) error

	// SweepExpired reclaims expired session rows and returns how many were removed.
	SweepExpired(ctx context.Context) (int64, error)
}
