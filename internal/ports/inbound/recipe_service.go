// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for the recipe catalog
type RecipeService interface {
	// Commands
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error
	CompleteRecipe(ctx context.Context, cmd CompleteRecipeCommand) (*RecipeDraftDTO, error)

	// Queries
	GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, userID uuid.UUID, query RecipeQuery) (*RecipeList, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	PrepTime     int // minutes
	CookTime     int // minutes
	Servings     int
	Nutrition    NutritionDTO
	Ingredients  []IngredientCommand
	Instructions []string
	Tags         []string
	Allergens    []string
	IsPublic     bool
}

// CompleteRecipeCommand contains a partial recipe to fill in with AI
// assistance. Provided fields are kept as-is.
type CompleteRecipeCommand struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	PrepTime     int
	CookTime     int
	Servings     int
	Nutrition    NutritionDTO
	Ingredients  []IngredientCommand
	Instructions []string
	Tags         []string
}

// RecipeDraftDTO is a completed recipe draft, ready to be reviewed and
// saved by the user
type RecipeDraftDTO struct {
	Description  string       `json:"description"`
	PrepTime     int          `json:"prep_time"`
	CookTime     int          `json:"cook_time"`
	Instructions []string     `json:"instructions"`
	Nutrition    NutritionDTO `json:"nutrition"`
	Tags         []string     `json:"tags"`
	Allergens    []string     `json:"allergens"`
}

// UpdateRecipeCommand contains data for updating a recipe.
// Nil fields keep their current value.
type UpdateRecipeCommand struct {
	RecipeID     uuid.UUID
	UserID       uuid.UUID
	Name         *string
	Description  *string
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Nutrition    *NutritionDTO
	Ingredients  *[]IngredientCommand
	Instructions *[]string
	Tags         *[]string
	Allergens    *[]string
	IsPublic     *bool
}

// IngredientCommand for adding ingredients
type IngredientCommand struct {
	Name     string `json:"name" binding:"required"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// RecipeQuery defines list filter parameters
type RecipeQuery struct {
	Search           string
	Tags             []string
	MaxCalories      *float64
	ExcludeAllergens []string
	Page             int
	PageSize         int
}

// NutritionDTO carries per-serving macros
type NutritionDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// IngredientDTO for ingredient data
type IngredientDTO struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url,omitempty"`
	PrepTime     int             `json:"prep_time"`
	CookTime     int             `json:"cook_time"`
	TotalTime    int             `json:"total_time"`
	Servings     int             `json:"servings"`
	Nutrition    NutritionDTO    `json:"nutrition"`
	Ingredients  []IngredientDTO `json:"ingredients"`
	Instructions []string        `json:"instructions"`
	Tags         []string        `json:"tags"`
	Allergens    []string        `json:"allergens"`
	CreatedBy    *uuid.UUID      `json:"created_by,omitempty"`
	IsPublic     bool            `json:"is_public"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// RecipeList for paginated results
type RecipeList struct {
	Recipes    []RecipeDTO `json:"recipes"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
