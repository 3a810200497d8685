package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/ports/outbound"
	apperrors "github.com/platewise/platewise/pkg/errors"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return apperrors.NewDatabaseError("create recipe", result.Error)
	}
	return nil
}

// Update updates an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("update recipe", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewRecipeNotFoundError(rec.ID.String())
	}
	return nil
}

// Delete deletes a recipe by ID (soft delete)
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete recipe", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewRecipeNotFoundError(id.String())
	}
	return nil
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewRecipeNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find recipe", result.Error)
	}

	return ModelToRecipe(&model), nil
}

// FindByIDs finds recipes by a set of IDs, skipping missing ones
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find recipes by ids", result.Error)
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// FindVisible returns public recipes plus the user's own, filtered and
// paginated by the criteria
func (r *RecipeRepository) FindVisible(ctx context.Context, userID uuid.UUID, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	query := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("is_public = ? OR created_by = ?", true, userID)

	if criteria.Query != "" {
		pattern := "%" + strings.ToLower(criteria.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if criteria.MaxCalories != nil {
		query = query.Where("nutrition_calories <= ?", *criteria.MaxCalories)
	}
	// Tags and allergens live in JSON columns; matching on the quoted
	// value keeps the filter portable across sqlite and postgres.
	for _, tag := range criteria.Tags {
		query = query.Where("CAST(tags AS TEXT) LIKE ?", fmt.Sprintf(`%%"%s"%%`, tag))
	}
	for _, allergen := range criteria.ExcludeAllergens {
		query = query.Where("CAST(allergens AS TEXT) NOT LIKE ?", fmt.Sprintf(`%%"%s"%%`, allergen))
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		return nil, 0, apperrors.NewDatabaseError("count recipes", result.Error)
	}

	query = query.Order(orderClause(criteria.OrderBy, criteria.OrderDir)).
		Offset(criteria.Offset)
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	var models []RecipeModel
	result := query.Find(&models)
	if result.Error != nil {
		return nil, 0, apperrors.NewDatabaseError("list recipes", result.Error)
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, int(total), nil
}

// BulkCreate creates multiple recipes in one statement
func (r *RecipeRepository) BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	models := make([]*RecipeModel, len(recipes))
	for i, rec := range recipes {
		models[i] = RecipeToModel(rec)
	}

	if result := r.db.WithContext(ctx).CreateInBatches(models, 100); result.Error != nil {
		return apperrors.NewDatabaseError("bulk create recipes", result.Error)
	}
	return nil
}

// orderClause whitelists sortable columns to keep user input out of SQL
func orderClause(orderBy, orderDir string) string {
	column := "created_at"
	switch orderBy {
	case "name":
		column = "name"
	case "calories":
		column = "nutrition_calories"
	case "created_at", "":
	}

	dir := "DESC"
	if strings.EqualFold(orderDir, "asc") {
		dir = "ASC"
	}
	return column + " " + dir
}
