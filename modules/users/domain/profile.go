package domain

// Profile is a value object holding a user's mutable fields.
// Value objects are immutable and compared by value.
type Profile struct {
	name  string
	email string
}

// NewProfile creates a validated Profile value object.
// An empty string counts as missing; both fields must be present.
// No other validation (email format, length, trimming) is performed -
// name and email are free-form text.
func NewProfile(name, email string) (Profile, error) {
	if name == "" || email == "" {
		return Profile{}, ErrFieldsRequired
	}
	return Profile{name: name, email: email}, nil
}

func (p Profile) Name() string  { return p.name }
func (p Profile) Email() string { return p.email }
func (p Profile) IsZero() bool  { return p.name == "" && p.email == "" }

func (p Profile) Equals(other Profile) bool {
	return p.name == other.name && p.email == other.email
}
