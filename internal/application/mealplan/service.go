// Package mealplan provides the application layer for the weekly meal
// calendar
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	recipeapp "github.com/platewise/platewise/internal/application/recipe"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

const dateLayout = "2006-01-02"

// MealPlanService implements the meal calendar use cases
type MealPlanService struct {
	planRepo   outbound.MealPlanRepository
	recipeRepo outbound.RecipeRepository
	logger     *zap.Logger
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(
	planRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		logger:     logger.Named("mealplan-service"),
	}
}

// ScheduleMeal places a recipe into a day slot, replacing whatever was
// scheduled there before
func (s *MealPlanService) ScheduleMeal(ctx context.Context, cmd inbound.ScheduleMealCommand) (*inbound.MealEntryDTO, error) {
	slot, err := mealplan.ParseSlot(cmd.Slot)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	rec, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	if !rec.VisibleTo(cmd.UserID) {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	entry, err := mealplan.NewEntry(cmd.UserID, cmd.RecipeID, cmd.Date, slot, cmd.Servings)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.planRepo.Upsert(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to schedule meal")
	}

	s.logger.Info("meal scheduled",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.String("date", entry.Date.Format(dateLayout)),
		zap.String("slot", string(slot)),
	)

	dto := toEntryDTO(entry)
	return &dto, nil
}

// SetConsumed marks or unmarks a meal as eaten
func (s *MealPlanService) SetConsumed(ctx context.Context, entryID, userID uuid.UUID, consumed bool) (*inbound.MealEntryDTO, error) {
	entry, err := s.planRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(userID) {
		return nil, errors.NewMealPlanNotFoundError(entryID.String())
	}

	entry.SetConsumed(consumed, time.Now())

	if err := s.planRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update meal entry")
	}

	dto := toEntryDTO(entry)
	return &dto, nil
}

// RemoveMeal deletes a scheduled meal
func (s *MealPlanService) RemoveMeal(ctx context.Context, entryID, userID uuid.UUID) error {
	entry, err := s.planRepo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if !entry.IsOwnedBy(userID) {
		return errors.NewMealPlanNotFoundError(entryID.String())
	}

	return s.planRepo.Delete(ctx, entryID)
}

// GetDay returns one day's meals in slot order
func (s *MealPlanService) GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.DayPlanDTO, error) {
	day := mealplan.DayOf(date)

	entries, err := s.planRepo.FindRange(ctx, userID, day, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load day plan")
	}

	dto := toDayDTO(day, mealplan.OrderMealsForDay(entries))
	return &dto, nil
}

// GetWeek returns the Monday-to-Sunday week containing the date, each
// day's meals in slot order
func (s *MealPlanService) GetWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.WeekPlanDTO, error) {
	weekStart := mealplan.WeekStart(date)
	weekEnd := mealplan.WeekEnd(date)

	entries, err := s.planRepo.FindRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load week plan")
	}

	days := make([]inbound.DayPlanDTO, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		var dayEntries []*mealplan.Entry
		for _, e := range entries {
			if mealplan.SameDay(e.Date, day) {
				dayEntries = append(dayEntries, e)
			}
		}
		days[i] = toDayDTO(day, mealplan.OrderMealsForDay(dayEntries))
	}

	return &inbound.WeekPlanDTO{
		WeekStart: weekStart.Format(dateLayout),
		WeekEnd:   weekEnd.Format(dateLayout),
		Days:      days,
	}, nil
}

func toDayDTO(day time.Time, entries []*mealplan.Entry) inbound.DayPlanDTO {
	meals := make([]inbound.MealEntryDTO, len(entries))
	for i, e := range entries {
		meals[i] = toEntryDTO(e)
	}
	return inbound.DayPlanDTO{
		Date:  day.Format(dateLayout),
		Meals: meals,
	}
}

func toEntryDTO(e *mealplan.Entry) inbound.MealEntryDTO {
	dto := inbound.MealEntryDTO{
		ID:        e.ID,
		RecipeID:  e.RecipeID,
		Date:      e.Date.Format(dateLayout),
		Slot:      string(e.Slot),
		SlotLabel: e.Slot.Label(),
		SlotTime:  e.Slot.TypicalTime(),
		Servings:  e.Servings,
		Consumed:  e.Consumed,
	}
	if e.ConsumedAt != nil {
		ts := e.ConsumedAt.Format(time.RFC3339)
		dto.ConsumedAt = &ts
	}
	if e.Recipe != nil {
		r := recipeapp.ToRecipeDTO(e.Recipe)
		dto.Recipe = &r
	}
	return dto
}
