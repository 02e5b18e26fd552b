package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

const tokenKeyPrefix = "auth:token:"

type session struct {
	UserID   string    `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// TokenStore issues signed bearer tokens and keeps each live token's jti
// in Redis until it expires or is revoked.
type TokenStore struct {
	rdb goredis.Cmdable
	jwt *helpers.JWTManager
}

func NewTokenStore(rdb goredis.Cmdable, jwt *helpers.JWTManager) *TokenStore {
	return &TokenStore{rdb: rdb, jwt: jwt}
}

func tokenKey(jti string) string { return tokenKeyPrefix + jti }

func (s *TokenStore) Issue(ctx context.Context, userID entity.UserID) (application.IssuedToken, error) {
	token, jti, exp, err := s.jwt.Generate(userID.Value())
	if err != nil {
		return application.IssuedToken{}, oops.Code("TOKEN_SIGN_FAILED").With("user_id", userID.Value()).Wrap(err)
	}
	rec := session{UserID: userID.Value(), IssuedAt: time.Now().UTC()}
	if err := helpers.RedisSetJSON(ctx, s.rdb, tokenKey(jti), rec, time.Until(exp)); err != nil {
		return application.IssuedToken{}, oops.Code("TOKEN_STORE_FAILED").With("user_id", userID.Value()).Wrap(err)
	}
	return application.IssuedToken{Token: token, ID: jti, ExpiresAt: exp}, nil
}

// Resolve accepts a token only while its signature verifies and its jti is
// still recorded for the same subject.
func (s *TokenStore) Resolve(ctx context.Context, token string) (application.TokenClaims, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return application.TokenClaims{}, application.ErrInvalidToken
	}
	var rec session
	found, err := helpers.RedisGetJSON(ctx, s.rdb, tokenKey(claims.TokenID()), &rec)
	if err != nil {
		return application.TokenClaims{}, oops.Code("TOKEN_LOOKUP_FAILED").Wrap(err)
	}
	if !found || rec.UserID != claims.UserID() {
		return application.TokenClaims{}, application.ErrInvalidToken
	}
	return application.TokenClaims{UserID: claims.UserID(), TokenID: claims.TokenID()}, nil
}

// Revoke deletes only this token's jti. Other tokens of the same user stay
// valid.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return application.ErrInvalidToken
	}
	n, err := helpers.RedisDel(ctx, s.rdb, tokenKey(claims.TokenID()))
	if err != nil {
		return oops.Code("TOKEN_REVOKE_FAILED").Wrap(err)
	}
	if n == 0 {
		return application.ErrInvalidToken
	}
	return nil
}

var _ application.TokenIssuer = (*TokenStore)(nil)
