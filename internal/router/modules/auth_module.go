package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-auth/internal/container"
	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
)

// AuthModule routes:
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: POST /api/auth/logout, GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Authn   middleware.Authenticator
}

func NewAuthModule(h *handlers.AuthHandler, authn middleware.Authenticator) *AuthModule {
	return &AuthModule{Handler: h, Authn: authn}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	// Public endpoints with IP+path rate limits
	publicLimiter := middleware.RateLimit(rdb, cfg.RateLimitAuth, cfg.RateLimitWindow, middleware.KeyByIPAndPath(), nil)
	rg.POST("/auth/register", publicLimiter, m.Handler.HandleRegister)
	rg.POST("/auth/login", publicLimiter, m.Handler.HandleLogin)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.Authn, container.GetLogger()))
	auth.Use(middleware.RateLimit(rdb, cfg.RateLimitAPI, cfg.RateLimitWindow, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.HandleLogout)
		auth.GET("/me", m.Handler.HandleMe)
	}
}
