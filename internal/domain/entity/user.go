// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system: one account in the user
// directory. Usernames are treated as opaque byte strings and compared
// exactly; no case folding or whitespace normalization is applied.
type User struct {
	ID           uuid.UUID // The unique identifier assigned by the directory at creation.
	Username     string    // The unique login name. Exact byte match, write-once.
	PasswordHash string    // The bcrypt hash of the password. Never serialized toward a client.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
