// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// The digest format belongs to the implementation; callers only ever compare through Check.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	// Hashing the same password twice yields different digests.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the digest.
	// A malformed digest is a mismatch, not an error.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not satisfy the configured policy.
	ValidatePasswordStrength(password string) error
}
