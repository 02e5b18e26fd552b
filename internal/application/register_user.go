package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

type RegisterUserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Roles                []string
}

type RegisterUserUseCase struct {
	Repo     repo.UserRepository
	Indexer  UserIndexer
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewRegisterUserUseCase(r repo.UserRepository, indexer UserIndexer, notifier Notifier, logger *logrus.Logger) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: r, Indexer: indexer, Notifier: notifier, Logger: logger}
}

// Execute validates every field before touching storage and reports all
// failures together as a *ValidationError.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*entity.User, error) {
	verr := NewValidationError()

	name, err := entity.NewUserName(in.Name)
	verr.Add("name", err)
	email, err := entity.NewUserEmail(in.Email)
	verr.Add("email", err)
	password, err := entity.NewUserPassword(in.Password)
	verr.Add("password", err)
	roles := parseRegistrationRoles(in.Roles, verr)

	if !verr.Has("email") {
		exists, err := uc.Repo.Exists(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			verr.Add("email", entity.ErrEmailAlreadyExists)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	u, err := entity.CreateUser(name, email, password, roles)
	if err != nil {
		verr.Add("roles", err)
		return nil, verr
	}

	if err := uc.Repo.Save(ctx, u); err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			verr.Add("email", entity.ErrEmailAlreadyExists)
			return nil, verr
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	if uc.Logger != nil {
		uc.Logger.WithField("user_id", u.ID().Value()).WithField("roles", u.RoleValues()).Info("user registered")
	}
	uc.afterRegister(ctx, u)
	return u, nil
}

func parseRegistrationRoles(raw []string, verr *ValidationError) []entity.UserRole {
	if len(raw) == 0 {
		verr.Add("roles", entity.ErrEmptyRoles)
		return nil
	}
	roles := make([]entity.UserRole, 0, len(raw))
	for _, s := range raw {
		r, err := entity.NewUserRole(s)
		if err != nil {
			verr.Add("roles", err)
			continue
		}
		if !r.IsSelfAssignable() {
			verr.Add("roles", entity.ErrRoleNotAssignable)
			continue
		}
		roles = append(roles, r)
	}
	return roles
}

func (uc *RegisterUserUseCase) afterRegister(ctx context.Context, u *entity.User) {
	if uc.Indexer != nil {
		if err := uc.Indexer.Index(ctx, u); err != nil && uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("index user failed")
		}
	}
	if uc.Notifier != nil {
		if err := uc.Notifier.UserRegistered(ctx, u); err != nil && uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("enqueue welcome email failed")
		}
	}
}
