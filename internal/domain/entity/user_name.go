package entity

import (
	"strings"
	"unicode/utf8"
)

const (
	userNameMinLength = 3
	userNameMaxLength = 100
)

// UserName is a trimmed display name.
type UserName struct {
	value string
}

func NewUserName(s string) (UserName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UserName{}, ErrEmptyUserName
	}
	if n := utf8.RuneCountInString(s); n < userNameMinLength || n > userNameMaxLength {
		return UserName{}, ErrInvalidUserName
	}
	return UserName{value: s}, nil
}

func (n UserName) Value() string  { return n.value }
func (n UserName) String() string { return n.value }

func (n UserName) Equals(other UserName) bool {
	return n.value == other.value
}
