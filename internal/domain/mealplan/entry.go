package mealplan

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/recipe"
)

// Entry is a single scheduled meal: one recipe in one slot on one day.
// A user has at most one entry per (date, slot) pair; scheduling into an
// occupied slot replaces the previous recipe.
type Entry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RecipeID   uuid.UUID
	Date       time.Time
	Slot       Slot
	Servings   float64
	Consumed   bool
	ConsumedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Recipe is the resolved recipe, nil when it was deleted after
	// scheduling. Aggregation treats a nil recipe as zero nutrition.
	Recipe *recipe.Recipe
}

// NewEntry creates a meal plan entry with validation
func NewEntry(userID, recipeID uuid.UUID, date time.Time, slot Slot, servings float64) (*Entry, error) {
	e := &Entry{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Date:     DayOf(date),
		Slot:     slot,
		Servings: servings,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return e, nil
}

// Validate checks the entry's invariants
func (e *Entry) Validate() error {
	if e.RecipeID == uuid.Nil {
		return ErrRecipeRequired
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if !e.Slot.Valid() {
		return ErrInvalidSlot
	}
	if math.IsNaN(e.Servings) || math.IsInf(e.Servings, 0) {
		return ErrNonFiniteServings
	}
	if e.Servings <= 0 {
		return ErrInvalidServings
	}
	return nil
}

// SetConsumed flips the consumed flag. The timestamp records when the
// meal was first marked consumed and is cleared when unmarked; repeating
// the current state leaves it untouched.
func (e *Entry) SetConsumed(consumed bool, now time.Time) {
	if consumed == e.Consumed {
		return
	}
	e.Consumed = consumed
	if consumed {
		ts := now
		e.ConsumedAt = &ts
	} else {
		e.ConsumedAt = nil
	}
	e.UpdatedAt = now
}

// IsOwnedBy reports whether the entry belongs to the given user
func (e *Entry) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}
