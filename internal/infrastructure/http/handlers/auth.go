package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	users inbound.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users inbound.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var cmd inbound.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		middleware.RespondErrorf(c, "invalid registration payload: %s", err.Error())
		return
	}

	result, err := h.users.Register(c.Request.Context(), cmd)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	created(c, result)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var cmd inbound.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		middleware.RespondErrorf(c, "invalid login payload: %s", err.Error())
		return
	}

	result, err := h.users.Login(c.Request.Context(), cmd)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, result)
}
