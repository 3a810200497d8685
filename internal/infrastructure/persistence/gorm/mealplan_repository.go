package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/outbound"
	apperrors "github.com/platewise/platewise/pkg/errors"
)

// MealPlanRepository implements the meal calendar repository using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Upsert schedules a meal. A conflict on (user, date, slot) updates the
// existing row's recipe and servings in place, preserving its identity
// and consumed state. The entry is reloaded afterwards so the caller
// sees the surviving row, recipe resolved.
func (r *MealPlanRepository) Upsert(ctx context.Context, entry *mealplan.Entry) error {
	model := EntryToModel(entry)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "plan_date"},
			{Name: "slot"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "servings", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("schedule meal", result.Error)
	}

	var saved MealEntryModel
	result = r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ? AND plan_date = ? AND slot = ?", model.UserID, model.PlanDate, model.Slot).
		First(&saved)
	if result.Error != nil {
		return apperrors.NewDatabaseError("reload meal entry", result.Error)
	}

	*entry = *ModelToEntry(&saved)
	return nil
}

// Update persists changes to an existing entry
func (r *MealPlanRepository) Update(ctx context.Context, entry *mealplan.Entry) error {
	model := EntryToModel(entry)

	result := r.db.WithContext(ctx).Model(&MealEntryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"recipe_id":   model.RecipeID,
			"servings":    model.Servings,
			"consumed":    model.Consumed,
			"consumed_at": model.ConsumedAt,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.NewDatabaseError("update meal entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewMealPlanNotFoundError(entry.ID.String())
	}
	return nil
}

// Delete removes a scheduled meal
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&MealEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete meal entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewMealPlanNotFoundError(id.String())
	}
	return nil
}

// FindByID finds an entry by ID with its recipe resolved
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	var model MealEntryModel

	result := r.db.WithContext(ctx).Preload("Recipe").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewMealPlanNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find meal entry", result.Error)
	}

	return ModelToEntry(&model), nil
}

// FindRange returns a user's entries with from <= date <= to, recipes
// resolved, ordered by date
func (r *MealPlanRepository) FindRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	var models []MealEntryModel

	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ? AND plan_date >= ? AND plan_date <= ?",
			userID, mealplan.DayOf(from), mealplan.DayOf(to)).
		Order("plan_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list meal entries", result.Error)
	}

	entries := make([]*mealplan.Entry, len(models))
	for i := range models {
		entries[i] = ModelToEntry(&models[i])
	}
	return entries, nil
}
