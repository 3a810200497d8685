package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// GroceryHandler serves the grocery list API
type GroceryHandler struct {
	groceries inbound.GroceryService
}

// NewGroceryHandler creates a new grocery handler
func NewGroceryHandler(groceries inbound.GroceryService) *GroceryHandler {
	return &GroceryHandler{groceries: groceries}
}

// Regenerate handles POST /api/v1/grocery/regenerate?date=YYYY-MM-DD
func (h *GroceryHandler) Regenerate(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.groceries.RegenerateWeek(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Week handles GET /api/v1/grocery?date=YYYY-MM-DD
func (h *GroceryHandler) Week(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.groceries.GetWeek(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

type toggleItemRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// Toggle handles PATCH /api/v1/grocery/:id/toggle
func (h *GroceryHandler) Toggle(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	var req toggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "checked flag is required")
		return
	}

	dto, err := h.groceries.ToggleItem(c.Request.Context(), id, middleware.UserID(c), *req.Checked)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Remove handles DELETE /api/v1/grocery/:id
func (h *GroceryHandler) Remove(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	if err := h.groceries.RemoveItem(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
