// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can collect favorite characters and planets.
type User struct {
	ID        uint      // System-assigned identifier.
	Username  *string   // Optional handle, unique when present.
	Email     string    // Unique contact email, also the login identifier.
	Password  string    // bcrypt hash. Never leaves the persistence and auth layers.
	IsActive  bool      // Inactive users cannot obtain tokens.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
