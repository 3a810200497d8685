package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// ProfileHandler serves the user profile API
type ProfileHandler struct {
	users inbound.UserService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(users inbound.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	dto, err := h.users.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// UpdateGoals handles PUT /api/v1/profile/goals
func (h *ProfileHandler) UpdateGoals(c *gin.Context) {
	var cmd inbound.UpdateGoalsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		middleware.RespondErrorf(c, "invalid goals payload: %s", err.Error())
		return
	}
	cmd.UserID = middleware.UserID(c)

	dto, err := h.users.UpdateGoals(c.Request.Context(), cmd)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// UpdatePreferences handles PUT /api/v1/profile/preferences
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var cmd inbound.UpdatePreferencesCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		middleware.RespondErrorf(c, "invalid preferences payload: %s", err.Error())
		return
	}
	cmd.UserID = middleware.UserID(c)

	dto, err := h.users.UpdatePreferences(c.Request.Context(), cmd)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}
