package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"gatehouse/config"
	"gatehouse/internal/domain/service"
)

// tokenByteLength is the entropy of a raw session token before hex encoding.
const tokenByteLength = 32

// sessionTokenService is a concrete implementation of the SessionTokenService
// interface using random opaque tokens. Only the SHA-256 digest of a token is
// ever stored; the raw value exists solely in the client cookie.
type sessionTokenService struct {
	ttl time.Duration
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) service.SessionTokenService {
	return &sessionTokenService{ttl: cfg.Session.TTL}
}

// Generate creates a new raw session token from the system CSPRNG.
func (s *sessionTokenService) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate session token")
	}

	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw token.
// The digest is the at-rest representation, so a leaked sessions table
// does not yield usable cookies.
func (s *sessionTokenService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// TTL returns the configured session lifetime.
func (s *sessionTokenService) TTL() time.Duration {
	return s.ttl
}
