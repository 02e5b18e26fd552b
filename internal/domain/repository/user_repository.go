package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
)

// ErrUserNotFound is returned by the Find methods when no user matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the storage boundary for users. Implementations own
// password hashing: Save hashes the plaintext carried by a new User and
// FindByCredentials verifies against the stored hash.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	Exists(ctx context.Context, email entity.UserEmail) (bool, error)
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email entity.UserEmail) (*entity.User, error)
	// FindByCredentials returns ErrUserNotFound both when the email is
	// unknown and when the password does not verify.
	FindByCredentials(ctx context.Context, email entity.UserEmail, password entity.UserPassword) (*entity.User, error)
	UpdateRoles(ctx context.Context, u *entity.User) error
}

// PasswordHasher is the one-way hash used by repository implementations.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
