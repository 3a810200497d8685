package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
)

// MealPlanHandler serves the meal calendar API
type MealPlanHandler struct {
	plans inbound.MealPlanService
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(plans inbound.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

type scheduleMealRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Slot     string    `json:"slot" binding:"required,mealslot"`
	Servings float64   `json:"servings"`
}

// Schedule handles POST /api/v1/mealplan
func (h *MealPlanHandler) Schedule(c *gin.Context) {
	var req scheduleMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "invalid meal payload: %s", err.Error())
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		middleware.RespondError(c, errors.NewValidationError("date must be formatted YYYY-MM-DD"))
		return
	}
	if req.Servings == 0 {
		req.Servings = 1
	}

	dto, err := h.plans.ScheduleMeal(c.Request.Context(), inbound.ScheduleMealCommand{
		UserID:   middleware.UserID(c),
		RecipeID: req.RecipeID,
		Date:     date,
		Slot:     req.Slot,
		Servings: req.Servings,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	created(c, dto)
}

type consumedRequest struct {
	Consumed *bool `json:"consumed" binding:"required"`
}

// SetConsumed handles PATCH /api/v1/mealplan/:id/consumed
func (h *MealPlanHandler) SetConsumed(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	var req consumedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "consumed flag is required")
		return
	}

	dto, err := h.plans.SetConsumed(c.Request.Context(), id, middleware.UserID(c), *req.Consumed)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Remove handles DELETE /api/v1/mealplan/:id
func (h *MealPlanHandler) Remove(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	if err := h.plans.RemoveMeal(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Day handles GET /api/v1/mealplan/day?date=YYYY-MM-DD
func (h *MealPlanHandler) Day(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.plans.GetDay(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Week handles GET /api/v1/mealplan/week?date=YYYY-MM-DD
func (h *MealPlanHandler) Week(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.plans.GetWeek(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}
