package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-auth/internal/container"
	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
)

// UserModule is the admin surface over user roles and the directory.
// All routes need a bearer token with the admin role.
type UserModule struct {
	Handler *handlers.UserHandler
	Authn   middleware.Authenticator
}

func NewUserModule(h *handlers.UserHandler, authn middleware.Authenticator) *UserModule {
	return &UserModule{Handler: h, Authn: authn}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	users := rg.Group("/users")
	users.Use(
		middleware.Auth(m.Authn, container.GetLogger()),
		middleware.RequireRoles("admin"),
		middleware.RateLimit(container.GetRedis(), cfg.RateLimitAPI, cfg.RateLimitWindow, middleware.KeyByUserID(), nil),
	)
	{
		users.GET("/search", m.Handler.HandleSearch)
		users.POST("/:id/roles", m.Handler.HandleAssignRole)
		users.DELETE("/:id/roles/:role", m.Handler.HandleRevokeRole)
	}
}
