package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

// AuthorizeRoles passes when identityRoles holds any of required. Any role
// name that does not parse, on either side, denies access.
func AuthorizeRoles(identityRoles []string, required ...string) error {
	if len(required) == 0 {
		return ErrForbidden
	}
	held := make([]entity.UserRole, 0, len(identityRoles))
	for _, s := range identityRoles {
		r, err := entity.NewUserRole(s)
		if err != nil {
			return ErrForbidden
		}
		held = append(held, r)
	}
	for _, s := range required {
		want, err := entity.NewUserRole(s)
		if err != nil {
			return ErrForbidden
		}
		for _, h := range held {
			if h.Equals(want) {
				return nil
			}
		}
	}
	return ErrForbidden
}

type AssignRoleUseCase struct {
	Repo    repo.UserRepository
	Indexer UserIndexer
	Logger  *logrus.Logger
}

func NewAssignRoleUseCase(r repo.UserRepository, indexer UserIndexer, logger *logrus.Logger) *AssignRoleUseCase {
	return &AssignRoleUseCase{Repo: r, Indexer: indexer, Logger: logger}
}

// Execute grants role to the user. Granting a role the user already holds
// succeeds without a write.
func (uc *AssignRoleUseCase) Execute(ctx context.Context, userID, role string) (*entity.User, error) {
	u, r, err := loadForRoleChange(ctx, uc.Repo, userID, role)
	if err != nil {
		return nil, err
	}
	if u.HasRole(r) {
		return u, nil
	}
	if err := u.AddRole(r); err != nil {
		verr := NewValidationError()
		verr.Add("role", err)
		return nil, verr
	}
	if err := uc.Repo.UpdateRoles(ctx, u); err != nil {
		return nil, fmt.Errorf("update roles: %w", err)
	}
	logRoleChange(uc.Logger, u, "role assigned", r)
	reindex(ctx, uc.Indexer, uc.Logger, u)
	return u, nil
}

type RevokeRoleUseCase struct {
	Repo    repo.UserRepository
	Indexer UserIndexer
	Logger  *logrus.Logger
}

func NewRevokeRoleUseCase(r repo.UserRepository, indexer UserIndexer, logger *logrus.Logger) *RevokeRoleUseCase {
	return &RevokeRoleUseCase{Repo: r, Indexer: indexer, Logger: logger}
}

// Execute removes role from the user. The last remaining role cannot be
// removed.
func (uc *RevokeRoleUseCase) Execute(ctx context.Context, userID, role string) (*entity.User, error) {
	u, r, err := loadForRoleChange(ctx, uc.Repo, userID, role)
	if err != nil {
		return nil, err
	}
	if !u.HasRole(r) {
		return u, nil
	}
	if err := u.RemoveRole(r); err != nil {
		verr := NewValidationError()
		verr.Add("roles", err)
		return nil, verr
	}
	if err := uc.Repo.UpdateRoles(ctx, u); err != nil {
		return nil, fmt.Errorf("update roles: %w", err)
	}
	logRoleChange(uc.Logger, u, "role revoked", r)
	reindex(ctx, uc.Indexer, uc.Logger, u)
	return u, nil
}

// loadForRoleChange validates the role before hitting storage. A malformed
// id is reported as an unknown user.
func loadForRoleChange(ctx context.Context, r repo.UserRepository, userID, role string) (*entity.User, entity.UserRole, error) {
	parsed, err := entity.NewUserRole(role)
	if err != nil {
		verr := NewValidationError()
		verr.Add("role", err)
		return nil, entity.UserRole{}, verr
	}
	id, err := entity.ParseUserID(userID)
	if err != nil {
		return nil, entity.UserRole{}, repo.ErrUserNotFound
	}
	u, err := r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, entity.UserRole{}, err
		}
		return nil, entity.UserRole{}, fmt.Errorf("find user: %w", err)
	}
	return u, parsed, nil
}

func logRoleChange(logger *logrus.Logger, u *entity.User, msg string, r entity.UserRole) {
	if logger == nil {
		return
	}
	logger.WithFields(logrus.Fields{
		"user_id": u.ID().Value(),
		"role":    r.Value(),
		"roles":   u.RoleValues(),
	}).Info(msg)
}

func reindex(ctx context.Context, indexer UserIndexer, logger *logrus.Logger, u *entity.User) {
	if indexer == nil {
		return
	}
	if err := indexer.Index(ctx, u); err != nil && logger != nil {
		logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("reindex user failed")
	}
}
