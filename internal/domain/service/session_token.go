package service

import "time"

// SessionTokenService defines the interface for minting and fingerprinting the
// opaque tokens that identify sessions. The raw token travels only in the
// cookie; the store keeps its hash.
type SessionTokenService interface {
	// Generate returns a new cryptographically unpredictable token.
	Generate() (string, error)

	// HashToken derives the deterministic at-rest fingerprint of a raw token.
	HashToken(raw string) string

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
