package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

type UserHandler struct {
	Assign *application.AssignRoleUseCase
	Revoke *application.RevokeRoleUseCase
	Search *application.SearchUsersUseCase
	Logger *logrus.Logger
}

func NewUserHandler(assign *application.AssignRoleUseCase, revoke *application.RevokeRoleUseCase, search *application.SearchUsersUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Assign: assign, Revoke: revoke, Search: search, Logger: logger}
}

type assignRoleRequest struct {
	Role string `json:"role"`
}

// HandleAssignRole POST /api/users/:id/roles (admin)
func (h *UserHandler) HandleAssignRole(c *gin.Context) {
	var req assignRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Assign.Execute(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	count(evRoleChanged)
	response.JSON(c, http.StatusOK, gin.H{"message": "Role assigned.", "user": toUserResource(u)})
}

// HandleRevokeRole DELETE /api/users/:id/roles/:role (admin)
func (h *UserHandler) HandleRevokeRole(c *gin.Context) {
	u, err := h.Revoke.Execute(c.Request.Context(), c.Param("id"), c.Param("role"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	count(evRoleChanged)
	response.JSON(c, http.StatusOK, gin.H{"message": "Role revoked.", "user": toUserResource(u)})
}

// HandleSearch GET /api/users/search?q=&size= (admin)
func (h *UserHandler) HandleSearch(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	docs, err := h.Search.Execute(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"data": docs, "count": len(docs)})
}
