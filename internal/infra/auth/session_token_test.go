package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatehouse/config"
)

func newTokenService(t *testing.T, ttl time.Duration) *sessionTokenService {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{TTL: ttl}}

	return NewSessionTokenService(cfg).(*sessionTokenService)
}

func TestSessionTokenService_Generate(t *testing.T) {
	svc := newTokenService(t, 24*time.Hour)

	raw, err := svc.Generate()
	require.NoError(t, err)

	// 32 bytes of entropy hex-encoded
	decoded, err := hex.DecodeString(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenByteLength)

	// Two tokens should never collide
	other, err := svc.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, raw, other)
}

func TestSessionTokenService_HashToken(t *testing.T) {
	svc := newTokenService(t, 24*time.Hour)

	hash := svc.HashToken("some-raw-token")

	// SHA-256 hex digest is 64 characters
	assert.Len(t, hash, 64)
	assert.NotEqual(t, "some-raw-token", hash)

	// Hashing is deterministic so lookups by digest work
	assert.Equal(t, hash, svc.HashToken("some-raw-token"))
	assert.NotEqual(t, hash, svc.HashToken("another-token"))
}

func TestSessionTokenService_TTL(t *testing.T) {
	svc := newTokenService(t, 42*time.Minute)

	assert.Equal(t, 42*time.Minute, svc.TTL())
}
