package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

func newStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTokenStore(rdb, helpers.NewJWTManager("test-secret", time.Hour, "auth-test")), mr
}

func userID(t *testing.T) entity.UserID {
	t.Helper()
	id, err := entity.ParseUserID("3f1c2b7e-9a4d-4c1e-8f2a-6b5d4c3e2a10")
	require.NoError(t, err)
	return id
}

func TestTokenStore_IssueResolve(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	issued, err := store.Issue(ctx, userID(t))
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, mr.Exists(tokenKey(issued.ID)))
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL(tokenKey(issued.ID)).Seconds(), 5)

	claims, err := store.Resolve(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID(t).Value(), claims.UserID)
	assert.Equal(t, issued.ID, claims.TokenID)
}

func TestTokenStore_RevokeOnlyCurrent(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	first, err := store.Issue(ctx, userID(t))
	require.NoError(t, err)
	second, err := store.Issue(ctx, userID(t))
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, first.Token))

	_, err = store.Resolve(ctx, first.Token)
	assert.ErrorIs(t, err, application.ErrInvalidToken)
	_, err = store.Resolve(ctx, second.Token)
	assert.NoError(t, err)

	assert.ErrorIs(t, store.Revoke(ctx, first.Token), application.ErrInvalidToken)
}

func TestTokenStore_Expiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	issued, err := store.Issue(ctx, userID(t))
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)

	_, err = store.Resolve(ctx, issued.Token)
	assert.ErrorIs(t, err, application.ErrInvalidToken)
}

func TestTokenStore_RejectsForeignTokens(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, err := store.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, application.ErrInvalidToken)
	assert.ErrorIs(t, store.Revoke(ctx, "garbage"), application.ErrInvalidToken)

	// signed with the right secret but never recorded
	tok, _, _, err := helpers.NewJWTManager("test-secret", time.Hour, "auth-test").Generate(userID(t).Value())
	require.NoError(t, err)
	_, err = store.Resolve(ctx, tok)
	assert.ErrorIs(t, err, application.ErrInvalidToken)
}

func TestTokenStore_RedisDown(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	issued, err := store.Issue(ctx, userID(t))
	require.NoError(t, err)

	mr.Close()
	_, err = store.Resolve(ctx, issued.Token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, application.ErrInvalidToken)
}
