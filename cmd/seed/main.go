package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	pginfra "github.com/oksasatya/go-ddd-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

// seed creates the first admin, or grants admin to an existing account.
// SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("seed failed")
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		return err
	}

	repo := pginfra.NewUserRepository(pool, helpers.NewBcryptHasher(cfg.BcryptCost))
	u, created, err := seedAdmin(ctx, repo, cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	helpers.LogInfo(logger, "admin ready", logrus.Fields{
		"id":      u.ID().Value(),
		"email":   u.Email().Value(),
		"roles":   u.RoleValues(),
		"created": created,
	})
	return nil
}

func seedAdmin(ctx context.Context, repo repository.UserRepository, name, email, password string) (*entity.User, bool, error) {
	mail, err := entity.NewUserEmail(email)
	if err != nil {
		return nil, false, oops.Code("CONFIG_INVALID").With("field", "SEED_ADMIN_EMAIL").Wrap(err)
	}

	existing, err := repo.FindByEmail(ctx, mail)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return existing, false, nil
		}
		if err := existing.AddRole(entity.RoleAdmin()); err != nil {
			return nil, false, err
		}
		if err := repo.UpdateRoles(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, false, err
	}

	userName, err := entity.NewUserName(name)
	if err != nil {
		return nil, false, oops.Code("CONFIG_INVALID").With("field", "SEED_ADMIN_NAME").Wrap(err)
	}
	pw, err := entity.NewUserPassword(password)
	if err != nil {
		return nil, false, oops.Code("CONFIG_INVALID").With("field", "SEED_ADMIN_PASSWORD").Wrap(err)
	}
	u, err := entity.CreateUser(userName, mail, pw, []entity.UserRole{entity.RoleAdmin()})
	if err != nil {
		return nil, false, err
	}
	if err := repo.Save(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}
