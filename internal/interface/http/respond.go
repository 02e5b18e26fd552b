package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
	"github.com/oksasatya/go-ddd-auth/pkg/validation"
)

const MsgInvalidCredentials = "Invalid credentials."

// bindJSON decodes the body into dst. An empty body decodes to the zero
// value so the use case can report each missing field. It writes the 422
// itself and returns false on failure.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.Validation(c, validation.ToDetails(err))
	return false
}

// respondError maps use-case errors onto HTTP responses.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Validation(c, verr.Messages())
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Abort(c, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, application.ErrInvalidToken):
		response.Unauthenticated(c)
	case errors.Is(err, application.ErrForbidden):
		response.Forbidden(c)
	case errors.Is(err, repo.ErrUserNotFound):
		response.NotFound(c)
	default:
		if logger != nil {
			logger.WithError(err).
				WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).
				WithField("path", c.FullPath()).
				Error("request failed")
		}
		response.ServerError(c)
	}
}
