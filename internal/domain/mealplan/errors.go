package mealplan

import "errors"

// Domain errors for meal plan operations

var (
	ErrInvalidSlot        = errors.New("meal slot is not recognized")
	ErrInvalidServings    = errors.New("servings must be greater than 0")
	ErrNonFiniteServings  = errors.New("servings must be a finite number")
	ErrInvalidDate        = errors.New("meal date is required")
	ErrRecipeRequired     = errors.New("meal plan entry requires a recipe")
	ErrNotEntryOwner      = errors.New("only the entry owner can perform this action")
	ErrMalformedNutrition = errors.New("recipe nutrition is malformed")
)
