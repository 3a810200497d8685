package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/user"
)

// AIService defines the interface for AI-backed features. Implementations
// surface provider throttling and billing failures as typed retryable
// errors so callers can distinguish them from hard failures.
type AIService interface {
	// Complete runs a free-form chat completion
	Complete(ctx context.Context, system, prompt string) (string, error)

	// RecommendRecipes picks exactly three candidates that fit the
	// user's goals, preferences and allergies.
	RecommendRecipes(ctx context.Context, req RecommendationRequest) ([]Recommendation, error)

	// GenerateRecipeImage produces an image for a recipe and returns
	// the raw bytes with their content type.
	GenerateRecipeImage(ctx context.Context, recipeName, description string) ([]byte, string, error)
}

// RecommendationRequest carries the profile and candidate pool for
// recipe recommendations
type RecommendationRequest struct {
	Goals       user.Goals
	Preferences []string
	Allergies   []string
	Candidates  []RecipeCandidate
}

// RecipeCandidate is the compact recipe form sent to the model
type RecipeCandidate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Fiber     float64   `json:"fiber"`
	Tags      []string  `json:"tags"`
	Allergens []string  `json:"allergens"`
}

// Recommendation is one AI-selected recipe with its rationale
type Recommendation struct {
	RecipeID           uuid.UUID `json:"recipe_id"`
	Reason             string    `json:"reason"`
	NutritionHighlight string    `json:"nutrition_highlight"`
}
