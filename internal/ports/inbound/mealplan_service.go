package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MealPlanService defines the use cases for the weekly meal calendar
type MealPlanService interface {
	// ScheduleMeal places a recipe into a day slot. Scheduling into an
	// occupied slot replaces the previous recipe.
	ScheduleMeal(ctx context.Context, cmd ScheduleMealCommand) (*MealEntryDTO, error)

	SetConsumed(ctx context.Context, entryID, userID uuid.UUID, consumed bool) (*MealEntryDTO, error)
	RemoveMeal(ctx context.Context, entryID, userID uuid.UUID) error

	// GetDay returns one day's meals in slot order
	GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*DayPlanDTO, error)

	// GetWeek returns the Monday-to-Sunday week containing the date
	GetWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*WeekPlanDTO, error)
}

// ScheduleMealCommand contains data for scheduling a meal
type ScheduleMealCommand struct {
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Date     time.Time
	Slot     string
	Servings float64
}

// MealEntryDTO is the data transfer object for a scheduled meal
type MealEntryDTO struct {
	ID         uuid.UUID  `json:"id"`
	RecipeID   uuid.UUID  `json:"recipe_id"`
	Recipe     *RecipeDTO `json:"recipe,omitempty"`
	Date       string     `json:"date"`
	Slot       string     `json:"slot"`
	SlotLabel  string     `json:"slot_label"`
	SlotTime   string     `json:"slot_time,omitempty"`
	Servings   float64    `json:"servings"`
	Consumed   bool       `json:"consumed"`
	ConsumedAt *string    `json:"consumed_at,omitempty"`
}

// DayPlanDTO is one day of the calendar, meals in slot order
type DayPlanDTO struct {
	Date  string         `json:"date"`
	Meals []MealEntryDTO `json:"meals"`
}

// WeekPlanDTO is a Monday-to-Sunday week of the calendar
type WeekPlanDTO struct {
	WeekStart string       `json:"week_start"`
	WeekEnd   string       `json:"week_end"`
	Days      []DayPlanDTO `json:"days"`
}
