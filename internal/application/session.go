package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	User    *entity.User
	TokenID string
	Token   string
}

type AuthenticateTokenUseCase struct {
	Tokens TokenIssuer
	Repo   repo.UserRepository
}

func NewAuthenticateTokenUseCase(tokens TokenIssuer, r repo.UserRepository) *AuthenticateTokenUseCase {
	return &AuthenticateTokenUseCase{Tokens: tokens, Repo: r}
}

// Execute resolves a bearer token to its live user. Unknown, revoked or
// orphaned tokens all yield ErrInvalidToken.
func (uc *AuthenticateTokenUseCase) Execute(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims, err := uc.Tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	id, err := entity.ParseUserID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("load token owner: %w", err)
	}
	return &Identity{User: u, TokenID: claims.TokenID, Token: token}, nil
}

type LogoutUserUseCase struct {
	Tokens TokenIssuer
}

func NewLogoutUserUseCase(tokens TokenIssuer) *LogoutUserUseCase {
	return &LogoutUserUseCase{Tokens: tokens}
}

// Execute revokes only the presented token; other sessions of the same
// user stay valid.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, id *Identity) error {
	if id == nil || id.Token == "" {
		return ErrInvalidToken
	}
	return uc.Tokens.Revoke(ctx, id.Token)
}
