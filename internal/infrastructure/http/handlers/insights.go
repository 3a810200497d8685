package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// InsightsHandler serves the nutrition tracking API
type InsightsHandler struct {
	insights inbound.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights inbound.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Daily handles GET /api/v1/insights/daily?date=YYYY-MM-DD
func (h *InsightsHandler) Daily(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.insights.DailyNutrition(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Trend handles GET /api/v1/insights/trend?date=YYYY-MM-DD
func (h *InsightsHandler) Trend(c *gin.Context) {
	date, valid := queryDate(c)
	if !valid {
		return
	}

	dto, err := h.insights.WeeklyTrend(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Recommendations handles GET /api/v1/insights/recommendations
func (h *InsightsHandler) Recommendations(c *gin.Context) {
	dtos, err := h.insights.RecommendRecipes(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, gin.H{"recommendations": dtos})
}
