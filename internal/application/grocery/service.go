// Package grocery provides the application layer for weekly grocery
// lists derived from the meal calendar
package grocery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

const dateLayout = "2006-01-02"

// GroceryService implements the grocery list use cases
type GroceryService struct {
	groceryRepo outbound.GroceryRepository
	planRepo    outbound.MealPlanRepository
	logger      *zap.Logger
}

// NewGroceryService creates a new grocery service
func NewGroceryService(
	groceryRepo outbound.GroceryRepository,
	planRepo outbound.MealPlanRepository,
	logger *zap.Logger,
) inbound.GroceryService {
	return &GroceryService{
		groceryRepo: groceryRepo,
		planRepo:    planRepo,
		logger:      logger.Named("grocery-service"),
	}
}

// RegenerateWeek rebuilds the list for the week containing the date
// from that week's scheduled meals. The previous list for the week is
// replaced wholesale, check-offs included; an empty meal week yields an
// empty list.
func (s *GroceryService) RegenerateWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.GroceryListDTO, error) {
	weekStart := mealplan.WeekStart(date)
	weekEnd := mealplan.WeekEnd(date)

	entries, err := s.planRepo.FindRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load week meals")
	}

	lines := grocery.Derive(entries)
	items := grocery.BuildItems(userID, weekStart, lines)

	if err := s.groceryRepo.ReplaceWeek(ctx, userID, weekStart, items); err != nil {
		return nil, errors.Wrap(err, "failed to replace grocery list")
	}

	s.logger.Info("grocery list regenerated",
		zap.String("user_id", userID.String()),
		zap.String("week_start", weekStart.Format(dateLayout)),
		zap.Int("items", len(items)),
	)

	return toListDTO(weekStart, items), nil
}

// GetWeek returns the stored list for the week containing the date,
// grouped by category in display order
func (s *GroceryService) GetWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.GroceryListDTO, error) {
	weekStart := mealplan.WeekStart(date)

	items, err := s.groceryRepo.FindWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load grocery list")
	}

	return toListDTO(weekStart, items), nil
}

// ToggleItem sets an item's checked-off state. Idempotent, so a
// retried or double-tapped request cannot undo the check-off.
func (s *GroceryService) ToggleItem(ctx context.Context, itemID, userID uuid.UUID, checked bool) (*inbound.GroceryItemDTO, error) {
	item, err := s.groceryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		return nil, errors.NewGroceryItemNotFoundError(itemID.String())
	}

	item.SetChecked(checked, time.Now())

	if err := s.groceryRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update grocery item")
	}

	dto := toItemDTO(item)
	return &dto, nil
}

// RemoveItem deletes a single line from the list
func (s *GroceryService) RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error {
	item, err := s.groceryRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.IsOwnedBy(userID) {
		return errors.NewGroceryItemNotFoundError(itemID.String())
	}

	return s.groceryRepo.Delete(ctx, itemID)
}

func toListDTO(weekStart time.Time, items []*grocery.Item) *inbound.GroceryListDTO {
	grocery.SortItems(items)

	dto := &inbound.GroceryListDTO{
		WeekStart:  weekStart.Format(dateLayout),
		Categories: []inbound.GroceryCategoryDTO{},
		Total:      len(items),
	}

	for _, item := range items {
		if item.Checked {
			dto.Checked++
		}

		n := len(dto.Categories)
		if n == 0 || dto.Categories[n-1].Category != item.Category {
			dto.Categories = append(dto.Categories, inbound.GroceryCategoryDTO{
				Category: item.Category,
			})
			n++
		}
		dto.Categories[n-1].Items = append(dto.Categories[n-1].Items, toItemDTO(item))
	}
	return dto
}

func toItemDTO(item *grocery.Item) inbound.GroceryItemDTO {
	return inbound.GroceryItemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Category: item.Category,
		Checked:  item.Checked,
	}
}
