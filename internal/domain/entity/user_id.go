package entity

import (
	"strings"

	"github.com/google/uuid"
)

// UserID is a UUID v4 identifying a user.
type UserID struct {
	value string
}

// GenerateUserID returns a fresh random id for a new user.
func GenerateUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// ParseUserID rebuilds an id read from storage or a request path.
// Only the canonical 36 character form of a version 4, RFC 4122 variant
// UUID is accepted. The value is stored lower case.
func ParseUserID(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UserID{}, ErrEmptyUserID
	}
	if len(s) != 36 {
		return UserID{}, ErrInvalidUserIDFormat
	}
	id, err := uuid.Parse(s)
	if err != nil || id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return UserID{}, ErrInvalidUserIDFormat
	}
	return UserID{value: strings.ToLower(s)}, nil
}

func (id UserID) Value() string  { return id.value }
func (id UserID) String() string { return id.value }
func (id UserID) IsZero() bool   { return id.value == "" }

func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}
