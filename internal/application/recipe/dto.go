package recipe

import (
	"time"

	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// ToRecipeDTO converts a domain recipe to its transfer object
func ToRecipeDTO(r *recipe.Recipe) inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = inbound.IngredientDTO{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Category: ing.CategoryOrDefault(),
		}
	}

	return inbound.RecipeDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.PrepTime + r.CookTime,
		Servings:    r.Servings,
		Nutrition: inbound.NutritionDTO{
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Carbs:    r.Nutrition.Carbs,
			Fat:      r.Nutrition.Fat,
			Fiber:    r.Nutrition.Fiber,
		},
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Tags:         r.Tags,
		Allergens:    r.Allergens,
		CreatedBy:    r.CreatedBy,
		IsPublic:     r.IsPublic,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
