// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes secrets one way. It is used for passwords and for
// refresh tokens at rest, so a leaked stored value cannot be replayed.
type PasswordHasher interface {
	// Hash generates a salted, cost-factored digest of secret.
	Hash(secret string) (string, error)

	// Check reports whether secret matches digest.
	Check(secret, digest string) bool
}
