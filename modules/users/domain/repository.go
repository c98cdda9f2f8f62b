package domain

import (
	"context"
)

// UserRepository defines the persistence interface for users.
// This is a port - defined in domain, implemented in infrastructure.
// Following the Interface Segregation Principle, we keep the interface minimal.
type UserRepository interface {
	// Add appends a fully-formed user (ID already assigned).
	// Always succeeds for valid input.
	Add(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound if no user has that ID.
	FindByID(ctx context.Context, id UserID) (*User, error)

	// Replace overwrites the name and email of the user with the given
	// ID in place, preserving the ID, and returns the updated user.
	// Returns ErrUserNotFound if no user has that ID.
	Replace(ctx context.Context, id UserID, profile Profile) (*User, error)

	// RemoveByID removes the user with the given ID.
	// Returns ErrUserNotFound if no user has that ID.
	RemoveByID(ctx context.Context, id UserID) error
}
