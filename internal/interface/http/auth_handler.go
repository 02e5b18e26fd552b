package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

type AuthHandler struct {
	Register *application.RegisterUserUseCase
	Login    *application.LoginUserUseCase
	Logout   *application.LogoutUserUseCase
	Tokens   application.TokenIssuer
	Logger   *logrus.Logger
}

func NewAuthHandler(
	register *application.RegisterUserUseCase,
	login *application.LoginUserUseCase,
	logout *application.LogoutUserUseCase,
	tokens application.TokenIssuer,
	logger *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{Register: register, Login: login, Logout: logout, Tokens: tokens, Logger: logger}
}

// Field checks live in the use case; only the confirmation is checked here.
// Roles stays raw so a non-array value is reported with the other fields.
type registerRequest struct {
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Password             string          `json:"password"`
	PasswordConfirmation string          `json:"password_confirmation" binding:"eqfield=Password"`
	Roles                json.RawMessage `json:"roles"`
}

// decodeRoles returns nil unless raw is a JSON array. Non-string elements
// are passed on as their JSON text and fail role parsing; null becomes "".
func decodeRoles(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil || items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = string(item)
		}
		out = append(out, s)
	}
	return out
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister POST /api/auth/register
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		count(evRegisterInvalid)
		return
	}

	u, err := h.Register.Execute(c.Request.Context(), application.RegisterUserInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Roles:                decodeRoles(req.Roles),
	})
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			count(evRegisterInvalid)
		}
		respondError(c, h.Logger, err)
		return
	}

	count(evRegisterOK)
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user":    toUserResource(u),
	})
}

// HandleLogin POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.Login.Execute(c.Request.Context(), application.LoginUserInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			count(evLoginFailed)
		}
		respondError(c, h.Logger, err)
		return
	}

	issued, err := h.Tokens.Issue(c.Request.Context(), u.ID())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	count(evLoginOK)
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   issued.Token,
		"user":    toUserSummary(u),
	})
}

// HandleLogout POST /api/auth/logout (bearer)
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	if err := h.Logout.Execute(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	count(evLogoutOK)
	response.Message(c, http.StatusOK, "Logged out successfully.")
}

// HandleMe GET /api/auth/me (bearer)
func (h *AuthHandler) HandleMe(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": toUserResource(id.User)})
}
