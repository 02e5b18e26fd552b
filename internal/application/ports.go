package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
)

// IssuedToken is a freshly minted bearer token.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims is what a live token resolves to.
type TokenClaims struct {
	UserID  string
	TokenID string
}

// TokenIssuer mints, resolves and revokes bearer tokens. Resolve and Revoke
// return ErrInvalidToken for tokens that are malformed, expired or revoked.
type TokenIssuer interface {
	Issue(ctx context.Context, userID entity.UserID) (IssuedToken, error)
	Resolve(ctx context.Context, token string) (TokenClaims, error)
	Revoke(ctx context.Context, token string) error
}

// UserDocument is the searchable projection of a user.
type UserDocument struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	IndexedAt time.Time `json:"indexed_at"`
}

type UserIndexer interface {
	Index(ctx context.Context, u *entity.User) error
	Search(ctx context.Context, q string, size int) ([]UserDocument, error)
}

// LoginMeta describes where a login came from.
type LoginMeta struct {
	IP        string
	UserAgent string
	At        time.Time
}

// Notifier emits user-facing notifications. Delivery is asynchronous and
// callers treat failures as non-fatal.
type Notifier interface {
	UserRegistered(ctx context.Context, u *entity.User) error
	UserLoggedIn(ctx context.Context, u *entity.User, meta LoginMeta) error
}
