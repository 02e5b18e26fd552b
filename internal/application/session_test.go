package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
)

func TestAuthenticateToken(t *testing.T) {
	r := newFakeRepo()
	u := r.seed(aliceID, "Alice", "alice@example.com", "Secret123!", "client")
	tokens := newFakeTokens()
	issued, err := tokens.Issue(context.Background(), u.ID())
	require.NoError(t, err)

	uc := NewAuthenticateTokenUseCase(tokens, r)

	id, err := uc.Execute(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, aliceID, id.User.ID().Value())
	assert.Equal(t, issued.ID, id.TokenID)

	_, err = uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = uc.Execute(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateToken_OrphanedToken(t *testing.T) {
	tokens := newFakeTokens()
	ghost, err := entity.ParseUserID("9b2e4f1a-1c3d-4e5f-a6b7-c8d9e0f1a2b3")
	require.NoError(t, err)
	issued, _ := tokens.Issue(context.Background(), ghost)

	_, err = NewAuthenticateTokenUseCase(tokens, newFakeRepo()).Execute(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutUser_RevokesOnlyPresentedToken(t *testing.T) {
	tokens := newFakeTokens()
	tokens.live["a"] = TokenClaims{UserID: aliceID, TokenID: "1"}
	tokens.live["b"] = TokenClaims{UserID: aliceID, TokenID: "2"}

	uc := NewLogoutUserUseCase(tokens)
	require.NoError(t, uc.Execute(context.Background(), &Identity{Token: "a", TokenID: "1"}))

	assert.Equal(t, []string{"a"}, tokens.revoked)
	_, stillLive := tokens.live["b"]
	assert.True(t, stillLive)

	assert.ErrorIs(t, uc.Execute(context.Background(), nil), ErrInvalidToken)
	assert.ErrorIs(t, uc.Execute(context.Background(), &Identity{Token: "a"}), ErrInvalidToken)
}
