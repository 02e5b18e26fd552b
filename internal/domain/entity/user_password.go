package entity

import (
	"strings"
	"unicode/utf8"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 50

	passwordSymbols = `!@#$%^&*()_-+=[]{}|;:'",.<>/?¿`
)

// UserPassword holds a plaintext password between the request and the
// hasher. It has no Equals; compare through PasswordHasher.Verify.
type UserPassword struct {
	value string
}

// NewUserPassword keeps the input exactly as given. Surrounding whitespace
// is rejected rather than trimmed.
func NewUserPassword(s string) (UserPassword, error) {
	if strings.TrimSpace(s) == "" {
		return UserPassword{}, ErrEmptyPassword
	}
	if s != strings.TrimSpace(s) {
		return UserPassword{}, ErrInvalidPassword
	}
	if n := utf8.RuneCountInString(s); n < passwordMinLength || n > passwordMaxLength {
		return UserPassword{}, ErrInvalidPassword
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return UserPassword{}, ErrInvalidPassword
	}
	return UserPassword{value: s}, nil
}

func (p UserPassword) Value() string { return p.value }

// String never reveals the plaintext.
func (p UserPassword) String() string { return "********" }
