package router

import (
	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/container"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	esinfra "github.com/oksasatya/go-ddd-auth/internal/infrastructure/elasticsearch"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/rabbitmq"
	redisinfra "github.com/oksasatya/go-ddd-auth/internal/infrastructure/redis"
	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
	"github.com/oksasatya/go-ddd-auth/internal/router/modules"
	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

type AuthModuleDeps struct {
	Repo   repository.UserRepository
	Tokens *redisinfra.TokenStore
	Authn  *application.AuthenticateTokenUseCase
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
}

func buildUserRepository(cfg *config.Config) repository.UserRepository {
	if cfg.StorageDriver == config.StorageMemory {
		return memory.NewUserRepository(container.GetHasher())
	}
	return pginfra.NewUserRepository(container.GetPGPool(), container.GetHasher())
}

// buildIndexer and buildNotifier return untyped nils when the backend is
// absent so the use cases skip the side effect.
func buildIndexer(cfg *config.Config) application.UserIndexer {
	es := container.GetES()
	if es == nil {
		return nil
	}
	return esinfra.NewUserIndex(es, cfg.ESUsersIndex)
}

func buildNotifier(cfg *config.Config) application.Notifier {
	pub := container.GetRabbitPub()
	if pub == nil || !cfg.MailSendEnabled {
		return nil
	}
	return rabbitmq.NewEmailNotifier(pub, mailtpl.BrandFromConfig(cfg))
}

func buildAuthDeps() AuthModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := buildUserRepository(cfg)
	indexer := buildIndexer(cfg)
	notifier := buildNotifier(cfg)
	tokens := redisinfra.NewTokenStore(container.GetRedis(), container.GetJWT())

	auth := handlers.NewAuthHandler(
		application.NewRegisterUserUseCase(repo, indexer, notifier, logger),
		application.NewLoginUserUseCase(repo, notifier, logger),
		application.NewLogoutUserUseCase(tokens),
		tokens,
		logger,
	)
	users := handlers.NewUserHandler(
		application.NewAssignRoleUseCase(repo, indexer, logger),
		application.NewRevokeRoleUseCase(repo, indexer, logger),
		application.NewSearchUsersUseCase(indexer),
		logger,
	)

	return AuthModuleDeps{
		Repo:   repo,
		Tokens: tokens,
		Authn:  application.NewAuthenticateTokenUseCase(tokens, repo),
		Auth:   auth,
		Users:  users,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) AuthModuleDeps {
	deps := buildAuthDeps()
	r.Add(modules.NewAuthModule(deps.Auth, deps.Authn))
	r.Add(modules.NewUserModule(deps.Users, deps.Authn))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return deps
}
