package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
)

const completeSystemPrompt = "You are a helpful cooking assistant. Return valid JSON only, no prose and no markdown fences."

const allowedTags = "breakfast, lunch, dinner, snack, vegetarian, vegan, gluten-free, high-protein, quick, meal-prep"

// completedFields is the shape the model is asked to produce
type completedFields struct {
	Description  string   `json:"description"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Instructions []string `json:"instructions"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	Fiber        float64  `json:"fiber"`
	Tags         []string `json:"tags"`
	Allergens    []string `json:"allergens"`
}

// CompleteRecipe fills in the missing fields of a partial recipe with
// AI assistance. Fields the user already provided are never
// overwritten; allergens always come from the model since users tend
// to forget them.
func (s *RecipeService) CompleteRecipe(ctx context.Context, cmd inbound.CompleteRecipeCommand) (*inbound.RecipeDraftDTO, error) {
	if s.aiService == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "AI assistance is not enabled", "")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("recipe name is required")
	}
	if len(cmd.Ingredients) == 0 {
		return nil, errors.NewValidationError("at least one ingredient is required")
	}

	s.logger.Info("completing recipe draft",
		zap.String("name", cmd.Name),
		zap.String("user_id", cmd.UserID.String()),
	)

	raw, err := s.aiService.Complete(ctx, completeSystemPrompt, buildCompletionPrompt(cmd))
	if err != nil {
		return nil, err
	}

	var generated completedFields
	if err := json.Unmarshal([]byte(stripFences(raw)), &generated); err != nil {
		return nil, errors.NewExternalServiceError("openai", fmt.Errorf("malformed completion: %w", err))
	}

	draft := &inbound.RecipeDraftDTO{
		Description:  cmd.Description,
		PrepTime:     cmd.PrepTime,
		CookTime:     cmd.CookTime,
		Instructions: cmd.Instructions,
		Nutrition:    cmd.Nutrition,
		Tags:         cmd.Tags,
		Allergens:    generated.Allergens,
	}
	if draft.Description == "" {
		draft.Description = generated.Description
	}
	if draft.PrepTime == 0 {
		draft.PrepTime = generated.PrepTime
	}
	if draft.CookTime == 0 {
		draft.CookTime = generated.CookTime
	}
	if len(draft.Instructions) == 0 {
		draft.Instructions = generated.Instructions
	}
	if draft.Nutrition.Calories == 0 {
		draft.Nutrition.Calories = generated.Calories
	}
	if draft.Nutrition.Protein == 0 {
		draft.Nutrition.Protein = generated.Protein
	}
	if draft.Nutrition.Carbs == 0 {
		draft.Nutrition.Carbs = generated.Carbs
	}
	if draft.Nutrition.Fat == 0 {
		draft.Nutrition.Fat = generated.Fat
	}
	if draft.Nutrition.Fiber == 0 {
		draft.Nutrition.Fiber = generated.Fiber
	}
	if len(draft.Tags) == 0 {
		draft.Tags = generated.Tags
	}
	return draft, nil
}

func buildCompletionPrompt(cmd inbound.CompleteRecipeCommand) string {
	servings := cmd.Servings
	if servings == 0 {
		servings = 2
	}

	var missing []string
	if cmd.Description == "" {
		missing = append(missing, "description (1-2 sentences about the dish)")
	}
	if cmd.PrepTime == 0 {
		missing = append(missing, "prep_time (in minutes)")
	}
	if cmd.CookTime == 0 {
		missing = append(missing, "cook_time (in minutes)")
	}
	if len(cmd.Instructions) == 0 {
		missing = append(missing, "instructions (array of step-by-step cooking instructions)")
	}
	if cmd.Nutrition.Calories == 0 {
		missing = append(missing, "calories (per serving)")
	}
	if cmd.Nutrition.Protein == 0 {
		missing = append(missing, "protein (grams per serving)")
	}
	if cmd.Nutrition.Carbs == 0 {
		missing = append(missing, "carbs (grams per serving)")
	}
	if cmd.Nutrition.Fat == 0 {
		missing = append(missing, "fat (grams per serving)")
	}
	if cmd.Nutrition.Fiber == 0 {
		missing = append(missing, "fiber (grams per serving)")
	}
	missing = append(missing,
		"tags (relevant tags from: "+allowedTags+")",
		"allergens (common allergens present, e.g., nuts, dairy, gluten, eggs, soy, shellfish)",
	)

	var ingredients strings.Builder
	for _, ing := range cmd.Ingredients {
		fmt.Fprintf(&ingredients, "%s %s\n", ing.Amount, ing.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a professional chef and nutritionist. Given this recipe information, generate the missing details.

Recipe Name: %s
Servings: %d

Ingredients:
%s
`, cmd.Name, servings, ingredients.String())

	if len(cmd.Instructions) > 0 {
		fmt.Fprintf(&b, "Existing Instructions:\n%s\n\n", strings.Join(cmd.Instructions, "\n"))
	}

	fmt.Fprintf(&b, `Generate the following missing fields as a single JSON object:
%s

Important:
- Nutrition values should be realistic per-serving estimates
- Instructions should be clear, numbered steps
- Tags should only include relevant ones from the provided list
- Allergens should only list what's actually present in the ingredients`, strings.Join(missing, "\n"))

	return b.String()
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one despite the instructions
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
