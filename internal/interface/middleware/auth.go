package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

const CtxIdentityKey = "identity"

// Authenticator resolves a bearer token to an identity.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*application.Identity, error)
}

// Auth requires a live bearer token and stores the caller's Identity in the
// Gin context.
func Auth(authn Authenticator, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Unauthenticated(c)
			return
		}
		id, err := authn.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, application.ErrInvalidToken) {
				response.Unauthenticated(c)
				return
			}
			if logger != nil {
				logger.WithError(err).WithField("request_id", c.GetString(CtxRequestIDKey)).Error("authenticate token failed")
			}
			response.ServerError(c)
			return
		}
		c.Set(CtxIdentityKey, id)
		c.Next()
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c *gin.Context) (*application.Identity, bool) {
	v, ok := c.Get(CtxIdentityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*application.Identity)
	return id, ok && id != nil
}
