// Package recipe contains the core domain model for the recipe catalog.
package recipe

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Nutrition holds per-serving macro values. Multiplying by a meal's
// servings yields the contributed nutrition.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// Validate checks that all macro values are finite and non-negative
func (n Nutrition) Validate() error {
	for _, v := range []float64{n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteNutrition
		}
		if v < 0 {
			return ErrNegativeNutrition
		}
	}
	return nil
}

// DefaultCategory is assigned to ingredients without a category.
const DefaultCategory = "Other"

// Ingredient is a value object within a recipe. The amount is a free-text
// quantity string ("2 cups") and is never parsed into numeric plus unit.
type Ingredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameRequired
	}
	return nil
}

// CategoryOrDefault returns the ingredient category, falling back to
// DefaultCategory when absent.
func (i Ingredient) CategoryOrDefault() string {
	if i.Category == "" {
		return DefaultCategory
	}
	return i.Category
}

// Recipe is the catalog entity. Nutrition is defined per single serving.
// CreatedBy is nil for system-seeded recipes.
type Recipe struct {
	ID           uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	PrepTime     int // minutes
	CookTime     int // minutes
	Servings     int
	Nutrition    Nutrition
	Ingredients  []Ingredient
	Instructions []string
	Tags         []string
	Allergens    []string
	CreatedBy    *uuid.UUID
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New creates a recipe with validation
func New(name string, createdBy *uuid.UUID) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Recipe{
		ID:        uuid.New(),
		Name:      name,
		Servings:  1,
		CreatedBy: createdBy,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the recipe's invariants
func (r *Recipe) Validate() error {
	if err := validateName(r.Name); err != nil {
		return err
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if err := r.Nutrition.Validate(); err != nil {
		return err
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsOwnedBy reports whether the recipe belongs to the given user.
// System-seeded recipes (nil owner) belong to nobody.
func (r *Recipe) IsOwnedBy(userID uuid.UUID) bool {
	return r.CreatedBy != nil && *r.CreatedBy == userID
}

// VisibleTo reports whether a user may read the recipe
func (r *Recipe) VisibleTo(userID uuid.UUID) bool {
	return r.IsPublic || r.IsOwnedBy(userID)
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return ErrNameTooShort
	}
	if len(trimmed) > 200 {
		return ErrNameTooLong
	}
	return nil
}
