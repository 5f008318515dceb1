// Package service holds the contracts for stateless domain services that the
// use cases depend on. Implementations live under internal/infra.
package service

// PasswordHasher turns plaintext passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
