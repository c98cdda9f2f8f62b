// Package domain contains the business entities and rules for users.
// This is the innermost layer - it has no dependencies on outer layers.
package domain

// User is the aggregate root for the user bounded context.
// A user exists if and only if it was created via the create use case
// and not subsequently removed.
type User struct {
	id      UserID
	profile Profile
}

// NewUser creates a User from an already-generated ID and a validated
// profile. The ID is assigned exactly once here and never changes.
func NewUser(id UserID, profile Profile) *User {
	return &User{
		id:      id,
		profile: profile,
	}
}

// Getters - expose state without allowing direct mutation

func (u *User) ID() UserID       { return u.id }
func (u *User) Name() string     { return u.profile.Name() }
func (u *User) Email() string    { return u.profile.Email() }
func (u *User) Profile() Profile { return u.profile }

// UpdateProfile overwrites the user's name and email in place.
// The ID is preserved.
func (u *User) UpdateProfile(profile Profile) {
	u.profile = profile
}
