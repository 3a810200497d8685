// Package recipe provides the application layer for the recipe catalog
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	userRepo   outbound.UserRepository
	aiService  outbound.AIService
	storage    outbound.StorageService
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service. The AI and storage
// dependencies are optional; without them recipes simply get no
// generated image.
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	userRepo outbound.UserRepository,
	aiService outbound.AIService,
	storage outbound.StorageService,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		aiService:  aiService,
		storage:    storage,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("creating recipe",
		zap.String("name", cmd.Name),
		zap.String("user_id", cmd.UserID.String()),
	)

	entity, err := recipe.New(cmd.Name, &cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity.Description = cmd.Description
	entity.PrepTime = cmd.PrepTime
	entity.CookTime = cmd.CookTime
	if cmd.Servings > 0 {
		entity.Servings = cmd.Servings
	}
	entity.Nutrition = nutritionFromDTO(cmd.Nutrition)
	entity.Ingredients = ingredientsFromCommands(cmd.Ingredients)
	entity.Instructions = cmd.Instructions
	entity.Tags = cmd.Tags
	entity.Allergens = cmd.Allergens
	entity.IsPublic = cmd.IsPublic

	if err := entity.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	s.generateImageAsync(entity)

	dto := ToRecipeDTO(entity)
	return &dto, nil
}

// UpdateRecipe updates an existing recipe. Only the owner may edit
// their recipes; moderators may also edit system recipes.
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeWrite(ctx, entity, cmd.UserID); err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		entity.Name = *cmd.Name
	}
	if cmd.Description != nil {
		entity.Description = *cmd.Description
	}
	if cmd.PrepTime != nil {
		entity.PrepTime = *cmd.PrepTime
	}
	if cmd.CookTime != nil {
		entity.CookTime = *cmd.CookTime
	}
	if cmd.Servings != nil {
		entity.Servings = *cmd.Servings
	}
	if cmd.Nutrition != nil {
		entity.Nutrition = nutritionFromDTO(*cmd.Nutrition)
	}
	if cmd.Ingredients != nil {
		entity.Ingredients = ingredientsFromCommands(*cmd.Ingredients)
	}
	if cmd.Instructions != nil {
		entity.Instructions = *cmd.Instructions
	}
	if cmd.Tags != nil {
		entity.Tags = *cmd.Tags
	}
	if cmd.Allergens != nil {
		entity.Allergens = *cmd.Allergens
	}
	if cmd.IsPublic != nil {
		entity.IsPublic = *cmd.IsPublic
	}
	entity.UpdatedAt = time.Now()

	if err := entity.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.Wrap(err, "failed to update recipe")
	}

	dto := ToRecipeDTO(entity)
	return &dto, nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return err
	}

	if err := s.authorizeWrite(ctx, entity, userID); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}

	s.logger.Info("recipe deleted",
		zap.String("recipe_id", recipeID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// GetRecipe returns a recipe the user may see. A private recipe of
// another user looks exactly like a missing one.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !entity.VisibleTo(userID) {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	dto := ToRecipeDTO(entity)
	return &dto, nil
}

// ListRecipes returns the recipes visible to the user, filtered and
// paginated
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, query inbound.RecipeQuery) (*inbound.RecipeList, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	recipes, total, err := s.recipeRepo.FindVisible(ctx, userID, outbound.SearchCriteria{
		Query:            query.Search,
		Tags:             query.Tags,
		MaxCalories:      query.MaxCalories,
		ExcludeAllergens: query.ExcludeAllergens,
		Offset:           (page - 1) * pageSize,
		Limit:            pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	dtos := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = ToRecipeDTO(r)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &inbound.RecipeList{
		Recipes:    dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// authorizeWrite checks that the user may modify the recipe. System
// recipes require a moderator role.
func (s *RecipeService) authorizeWrite(ctx context.Context, entity *recipe.Recipe, userID uuid.UUID) error {
	if entity.IsOwnedBy(userID) {
		return nil
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if entity.CreatedBy == nil && u.CanManageSystemRecipes() {
		return nil
	}
	return errors.NewForbiddenError()
}

// generateImageAsync produces a recipe image in the background. Image
// generation is best-effort: failures are logged, never surfaced.
func (s *RecipeService) generateImageAsync(entity *recipe.Recipe) {
	if s.aiService == nil || s.storage == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		data, contentType, err := s.aiService.GenerateRecipeImage(ctx, entity.Name, entity.Description)
		if err != nil {
			s.logger.Warn("recipe image generation failed",
				zap.String("recipe_id", entity.ID.String()),
				zap.Error(err),
			)
			return
		}

		key := fmt.Sprintf("recipes/%s.png", entity.ID)
		url, err := s.storage.Upload(ctx, key, data, contentType)
		if err != nil {
			s.logger.Warn("recipe image upload failed",
				zap.String("recipe_id", entity.ID.String()),
				zap.Error(err),
			)
			return
		}

		entity.ImageURL = url
		entity.UpdatedAt = time.Now()
		if err := s.recipeRepo.Update(ctx, entity); err != nil {
			s.logger.Warn("recipe image url update failed",
				zap.String("recipe_id", entity.ID.String()),
				zap.Error(err),
			)
		}
	}()
}

func nutritionFromDTO(n inbound.NutritionDTO) recipe.Nutrition {
	return recipe.Nutrition{
		Calories: n.Calories,
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
		Fiber:    n.Fiber,
	}
}

func ingredientsFromCommands(cmds []inbound.IngredientCommand) []recipe.Ingredient {
	out := make([]recipe.Ingredient, len(cmds))
	for i, c := range cmds {
		out[i] = recipe.Ingredient{
			Name:     c.Name,
			Amount:   c.Amount,
			Category: c.Category,
		}
	}
	return out
}
