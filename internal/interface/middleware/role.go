package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

// RequireRoles lets the request through when the authenticated user holds
// any of roles. It must run after Auth; without an identity it answers 401.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Unauthenticated(c)
			return
		}
		if err := application.AuthorizeRoles(id.User.RoleValues(), roles...); err != nil {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
