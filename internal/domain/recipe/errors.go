package recipe

import "errors"

// Domain errors for recipe operations

var (
	ErrNameTooShort           = errors.New("recipe name must be at least 2 characters")
	ErrNameTooLong            = errors.New("recipe name must not exceed 200 characters")
	ErrInvalidServings        = errors.New("servings must be greater than 0")
	ErrNegativeNutrition      = errors.New("nutrition values cannot be negative")
	ErrNonFiniteNutrition     = errors.New("nutrition values must be finite numbers")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNoIngredients          = errors.New("recipe must have at least one ingredient")
	ErrNotRecipeOwner         = errors.New("only recipe owner can perform this action")
)
