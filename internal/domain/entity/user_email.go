package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const userEmailMaxLength = 255

var emailValidate = validator.New()

// UserEmail is a trimmed, lower-cased email address. Case folding happens
// here so lookups behave the same whatever collation the store uses.
type UserEmail struct {
	value string
}

func NewUserEmail(s string) (UserEmail, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UserEmail{}, ErrEmptyEmail
	}
	if utf8.RuneCountInString(s) > userEmailMaxLength {
		return UserEmail{}, ErrEmailTooLong
	}
	if err := emailValidate.Var(s, "email"); err != nil {
		return UserEmail{}, ErrInvalidEmailFormat
	}
	return UserEmail{value: s}, nil
}

func (e UserEmail) Value() string  { return e.value }
func (e UserEmail) String() string { return e.value }

func (e UserEmail) Equals(other UserEmail) bool {
	return e.value == other.value
}
