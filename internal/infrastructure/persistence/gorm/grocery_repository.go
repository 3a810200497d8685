package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/outbound"
	apperrors "github.com/platewise/platewise/pkg/errors"
)

// GroceryRepository implements the grocery list repository using GORM
type GroceryRepository struct {
	db *gorm.DB
}

// NewGroceryRepository creates a new grocery repository
func NewGroceryRepository(db *gorm.DB) outbound.GroceryRepository {
	return &GroceryRepository{db: db}
}

// ReplaceWeek atomically swaps a user's list for one week. Delete and
// insert run in one transaction so a failed regeneration never leaves a
// partial list behind.
func (r *GroceryRepository) ReplaceWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time, items []*grocery.Item) error {
	week := mealplan.DayOf(weekStart)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ? AND week_start = ?", userID, week).
			Delete(&GroceryItemModel{}); result.Error != nil {
			return result.Error
		}

		if len(items) == 0 {
			return nil
		}

		models := make([]*GroceryItemModel, len(items))
		for i, item := range items {
			models[i] = ItemToModel(item)
		}
		return tx.CreateInBatches(models, 100).Error
	})
	if err != nil {
		return apperrors.NewDatabaseError("replace grocery week", err)
	}
	return nil
}

// FindWeek returns a user's items for one week
func (r *GroceryRepository) FindWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]*grocery.Item, error) {
	var models []GroceryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, mealplan.DayOf(weekStart)).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list grocery items", result.Error)
	}

	items := make([]*grocery.Item, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items, nil
}

// FindByID finds a grocery item by ID
func (r *GroceryRepository) FindByID(ctx context.Context, id uuid.UUID) (*grocery.Item, error) {
	var model GroceryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewGroceryItemNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find grocery item", result.Error)
	}

	return ModelToItem(&model), nil
}

// Update persists changes to an existing item
func (r *GroceryRepository) Update(ctx context.Context, item *grocery.Item) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Model(&GroceryItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"checked":    model.Checked,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.NewDatabaseError("update grocery item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewGroceryItemNotFoundError(item.ID.String())
	}
	return nil
}

// Delete removes a grocery item
func (r *GroceryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&GroceryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete grocery item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewGroceryItemNotFoundError(id.String())
	}
	return nil
}
