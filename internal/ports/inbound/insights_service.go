package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InsightsService defines the nutrition tracking and recommendation
// use cases built on top of the meal calendar
type InsightsService interface {
	// DailyNutrition compares one day's consumed and planned totals
	// against the user's goals
	DailyNutrition(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyNutritionDTO, error)

	// WeeklyTrend returns consumed totals for the seven days ending at
	// the date, inclusive, zero-filled for empty days
	WeeklyTrend(ctx context.Context, userID uuid.UUID, date time.Time) (*WeeklyTrendDTO, error)

	// RecommendRecipes returns exactly three AI-picked recipes for the
	// user. Results are cached briefly per user.
	RecommendRecipes(ctx context.Context, userID uuid.UUID) ([]RecommendationDTO, error)
}

// MacroProgressDTO is one macro's consumed amount against its goal
type MacroProgressDTO struct {
	Consumed float64 `json:"consumed"`
	Planned  float64 `json:"planned"`
	Goal     float64 `json:"goal"`
	// Percent is consumed over goal, capped at 100; zero when the goal
	// is zero.
	Percent float64 `json:"percent"`
}

// DailyNutritionDTO is one day's nutrition against goals
type DailyNutritionDTO struct {
	Date     string           `json:"date"`
	Calories MacroProgressDTO `json:"calories"`
	Protein  MacroProgressDTO `json:"protein"`
	Carbs    MacroProgressDTO `json:"carbs"`
	Fat      MacroProgressDTO `json:"fat"`
	Fiber    MacroProgressDTO `json:"fiber"`
}

// TrendPointDTO is one day in the weekly trend series
type TrendPointDTO struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// WeeklyTrendDTO is the seven-day consumed nutrition series
type WeeklyTrendDTO struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Points []TrendPointDTO `json:"points"`
	Goals  NutritionDTO    `json:"goals"`
}

// RecommendationDTO is one AI-recommended recipe with its rationale
type RecommendationDTO struct {
	Recipe             RecipeDTO `json:"recipe"`
	Reason             string    `json:"reason"`
	NutritionHighlight string    `json:"nutrition_highlight"`
}
