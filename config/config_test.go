package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.UsesPostgres())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("MAIL_SEND_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("RATE_LIMIT_AUTH", "0")
	t.Setenv("SEED_ADMIN_EMAIL", "root@example.com")
	t.Setenv("SEED_ADMIN_NAME", "")

	cfg := Load()
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 12, cfg.BcryptCost, "invalid ints fall back to the default")
	assert.False(t, cfg.MailSendEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Equal(t, 0, cfg.RateLimitAuth)
	assert.Equal(t, "root@example.com", cfg.SeedAdminEmail)
	assert.Equal(t, "Administrator", cfg.SeedAdminName)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Env: "development", StorageDriver: StorageMemory, JWTSecret: "x", AccessTTL: time.Minute}
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "mysql" }, wantErr: "STORAGE_DRIVER"},
		{name: "empty secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		{name: "dev secret in production", mutate: func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "devaccesssecret"
		}, wantErr: "production"},
		{name: "non-positive ttl", mutate: func(c *Config) { c.AccessTTL = 0 }, wantErr: "JWT_ACCESS_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "auth", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/auth?sslmode=disable", c.PostgresDSN())
}
