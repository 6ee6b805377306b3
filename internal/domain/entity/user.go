// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account able to authenticate against the marketplace.
// The role is fixed at registration.
type User struct {
	ID             int64     // Primary key assigned by storage.
	Email          string    // Unique login identifier, also the token subject.
	HashedPassword string    // bcrypt hash, never serialized.
	Role           Role      // buyer, seller or admin.
	IsActive       bool      // Soft-delete flag.
	CreatedAt      time.Time // Timestamp of registration.
}
