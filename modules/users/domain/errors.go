package domain

import "errors"

// Domain errors - business rule violations.
// These errors are part of the domain language. Exactly two kinds are
// visible to callers: a missing required field and a missing user.
var (
	// ErrUserNotFound indicates no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrFieldsRequired indicates name or email is missing or empty.
	ErrFieldsRequired = errors.New("name and email are required")
)
