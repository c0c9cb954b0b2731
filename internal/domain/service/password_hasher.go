// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Repeated calls
	// on the same input produce different hashes (per-call salt).
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash using the
	// algorithm's own comparison primitive. It returns false on mismatch and
	// on any internal comparison failure (e.g., a malformed stored hash); the
	// two cases are deliberately indistinguishable to callers.
	Check(password, hash string) bool
}
