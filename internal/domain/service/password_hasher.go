// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
// Implementations never log or expose the plaintext or the produced hash.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls
	// with the same input yield different hashes (distinct salts).
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed, empty, or absent hash is a verification failure, never
	// a fault: Check returns false rather than an error.
	Check(password, hash string) bool
}
