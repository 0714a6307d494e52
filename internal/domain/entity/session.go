// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated client connection. It binds the token
// carried by the browser cookie to a snapshot of the account that logged in.
// A session is created only by a successful login and ends on logout or
// expiry; anonymous requests have no session record at all.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links the session to the account that authenticated.
	Username  string    // Snapshot of the account's username. The password hash is never copied here.
	TokenHash string    // SHA-256 hash of the raw cookie token. The raw token is never stored.
	ExpiresAt time.Time // The exact time at which this session stops being valid.
	CreatedAt time.Time // Timestamp of when the session was created (i.e. when the user logged in).
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
