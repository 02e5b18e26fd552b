package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router auto-wires modules from these singletons. Optional backends
// (Postgres in memory mode, RabbitMQ, Elasticsearch) may stay nil.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	hasher     repository.PasswordHasher

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	if cfg != nil {
		jwtManager = helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL, cfg.JWTIssuer)
	}
	return jwtManager
}

func SetHasher(h repository.PasswordHasher) { hasher = h }
func GetHasher() repository.PasswordHasher {
	if hasher != nil {
		return hasher
	}
	cost := 0
	if cfg != nil {
		cost = cfg.BcryptCost
	}
	hasher = helpers.NewBcryptHasher(cost)
	return hasher
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// Reset clears every singleton. Tests use it between router builds.
func Reset() {
	cfg, logger, pgPool, redisClient = nil, nil, nil, nil
	jwtManager, hasher, rabbitPub, esClient = nil, nil, nil, nil
}
