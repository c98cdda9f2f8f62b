package domain

import "github.com/google/uuid"

// UserID represents a unique identifier for a user.
// The value is opaque: a lookup with an ID that was never generated
// reports not-found rather than a format error.
type UserID struct {
	value string
}

// UserIDFrom wraps a raw identifier, typically taken from a request path.
func UserIDFrom(s string) UserID {
	return UserID{value: s}
}

func (id UserID) String() string { return id.value }
func (id UserID) IsZero() bool   { return id.value == "" }

// IDGenerator produces new unique user identifiers.
// Abstracting generation behind an interface lets tests inject
// deterministic IDs.
type IDGenerator interface {
	NewID() UserID
}

// UUIDGenerator generates random UUID identifiers.
// Collisions are ruled out with overwhelming probability.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() UserID {
	return UserID{value: uuid.New().String()}
}

// Compile-time interface check.
var _ IDGenerator = UUIDGenerator{}
