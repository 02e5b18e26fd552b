package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

type LoginUserInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

type LoginUserUseCase struct {
	Repo     repo.UserRepository
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewLoginUserUseCase(r repo.UserRepository, notifier Notifier, logger *logrus.Logger) *LoginUserUseCase {
	return &LoginUserUseCase{Repo: r, Notifier: notifier, Logger: logger}
}

// Execute returns ErrInvalidCredentials without saying whether the email
// or the password was wrong.
func (uc *LoginUserUseCase) Execute(ctx context.Context, in LoginUserInput) (*entity.User, error) {
	verr := NewValidationError()
	email, err := entity.NewUserEmail(in.Email)
	verr.Add("email", err)
	password, err := entity.NewUserPassword(in.Password)
	verr.Add("password", err)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	u, err := uc.Repo.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find by credentials: %w", err)
	}

	if uc.Notifier != nil {
		meta := LoginMeta{IP: in.IP, UserAgent: in.UserAgent, At: time.Now().UTC()}
		if err := uc.Notifier.UserLoggedIn(ctx, u, meta); err != nil && uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("enqueue login notification failed")
		}
	}
	return u, nil
}
