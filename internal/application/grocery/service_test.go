package grocery_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	groceryapp "github.com/platewise/platewise/internal/application/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
	"github.com/platewise/platewise/test/testutils"
)

// GroceryServiceTestSuite provides a test suite for the grocery service
type GroceryServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	factory   *testutils.RecipeFactory
	recipes   *testutils.MemoryRecipeRepository
	plans     *testutils.MemoryMealPlanRepository
	groceries *testutils.MemoryGroceryRepository
	service   inbound.GroceryService
	userID    uuid.UUID
	wednesday time.Time
}

// SetupTest wires fresh repositories for every test
func (s *GroceryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.factory = testutils.NewRecipeFactory(42)
	s.recipes = testutils.NewMemoryRecipeRepository()
	s.plans = testutils.NewMemoryMealPlanRepository(s.recipes)
	s.groceries = testutils.NewMemoryGroceryRepository()
	s.service = groceryapp.NewGroceryService(s.groceries, s.plans, zap.NewNop())
	s.userID = uuid.New()
	s.wednesday = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
}

func (s *GroceryServiceTestSuite) scheduleWith(date time.Time, slot mealplan.Slot, ingredients ...recipe.Ingredient) {
	r := s.factory.Recipe()
	r.Ingredients = ingredients
	require.NoError(s.T(), s.recipes.Create(s.ctx, r))

	entry := s.factory.Entry(s.userID, r, date, slot)
	require.NoError(s.T(), s.plans.Upsert(s.ctx, entry))
}

// TestRegenerateWeek tests rebuilding the list from the calendar
func (s *GroceryServiceTestSuite) TestRegenerateWeek() {
	s.Run("WeekOfMeals_ShouldProduceGroupedList", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotLunch,
			recipe.Ingredient{Name: "spinach", Amount: "1 bag", Category: "Produce"},
			recipe.Ingredient{Name: "milk", Amount: "1 gal", Category: "Dairy"},
		)
		s.scheduleWith(s.wednesday.AddDate(0, 0, 1), mealplan.SlotDinner,
			recipe.Ingredient{Name: "Spinach", Amount: "2 bags", Category: "Produce"},
			recipe.Ingredient{Name: "salmon", Amount: "1 lb", Category: "Proteins"},
		)

		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)

		assert.Equal(s.T(), "2026-03-09", list.WeekStart)
		assert.Equal(s.T(), 3, list.Total, "duplicate spinach should be merged")
		require.Len(s.T(), list.Categories, 3)
		assert.Equal(s.T(), "Produce", list.Categories[0].Category)
		assert.Equal(s.T(), "Proteins", list.Categories[1].Category)
		assert.Equal(s.T(), "Dairy", list.Categories[2].Category)
		assert.Equal(s.T(), "Spinach", list.Categories[0].Items[0].Name)
		assert.Equal(s.T(), "1 bag", list.Categories[0].Items[0].Quantity)
	})

	s.Run("Regenerate_ShouldDiscardCheckOffs", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotBreakfast,
			recipe.Ingredient{Name: "oats", Amount: "1 cup", Category: "Grains"},
		)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		require.NotEmpty(s.T(), list.Categories)

		itemID := list.Categories[0].Items[0].ID
		_, err = s.service.ToggleItem(s.ctx, itemID, s.userID, true)
		require.NoError(s.T(), err)

		regenerated, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		assert.Zero(s.T(), regenerated.Checked)
	})

	s.Run("EmptyMealWeek_ShouldYieldEmptyList", func() {
		nextMonth := s.wednesday.AddDate(0, 1, 0)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, nextMonth)
		require.NoError(s.T(), err)
		assert.Zero(s.T(), list.Total)
		assert.Empty(s.T(), list.Categories)
	})
}

// TestGetWeek tests reading the stored list
func (s *GroceryServiceTestSuite) TestGetWeek() {
	s.Run("NoListYet_ShouldReturnEmpty", func() {
		list, err := s.service.GetWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		assert.Zero(s.T(), list.Total)
	})

	s.Run("StoredList_ShouldSurviveReload", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotLunch,
			recipe.Ingredient{Name: "rice", Amount: "2 cups", Category: "Grains"},
		)
		_, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)

		list, err := s.service.GetWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1, list.Total)
		assert.Equal(s.T(), "Rice", list.Categories[0].Items[0].Name)
	})
}

// TestToggleItem tests check-offs
func (s *GroceryServiceTestSuite) TestToggleItem() {
	s.Run("OwnItem_ShouldRecordGivenState", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotLunch,
			recipe.Ingredient{Name: "beans", Amount: "1 can", Category: "Pantry"},
		)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		itemID := list.Categories[0].Items[0].ID

		dto, err := s.service.ToggleItem(s.ctx, itemID, s.userID, true)
		require.NoError(s.T(), err)
		assert.True(s.T(), dto.Checked)

		dto, err = s.service.ToggleItem(s.ctx, itemID, s.userID, false)
		require.NoError(s.T(), err)
		assert.False(s.T(), dto.Checked)
	})

	s.Run("RepeatedRequest_ShouldKeepItemChecked", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotBreakfast,
			recipe.Ingredient{Name: "yogurt", Amount: "2 cups", Category: "Dairy"},
		)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		itemID := list.Categories[0].Items[0].ID

		_, err = s.service.ToggleItem(s.ctx, itemID, s.userID, true)
		require.NoError(s.T(), err)

		dto, err := s.service.ToggleItem(s.ctx, itemID, s.userID, true)
		require.NoError(s.T(), err)
		assert.True(s.T(), dto.Checked, "a retried check-off must not uncheck the item")

		reloaded, err := s.service.GetWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1, reloaded.Checked)
	})

	s.Run("AnotherUsersItem_ShouldReturnNotFound", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotDinner,
			recipe.Ingredient{Name: "pasta", Amount: "1 box", Category: "Grains"},
		)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		itemID := list.Categories[0].Items[0].ID

		_, err = s.service.ToggleItem(s.ctx, itemID, uuid.New(), true)
		assert.Equal(s.T(), errors.CodeGroceryItemNotFound, errors.GetCode(err))
	})
}

// TestRemoveItem tests deleting single lines
func (s *GroceryServiceTestSuite) TestRemoveItem() {
	s.Run("OwnItem_ShouldDisappearFromList", func() {
		s.scheduleWith(s.wednesday, mealplan.SlotLunch,
			recipe.Ingredient{Name: "eggs", Amount: "1 dozen", Category: "Dairy"},
		)
		list, err := s.service.RegenerateWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		itemID := list.Categories[0].Items[0].ID

		require.NoError(s.T(), s.service.RemoveItem(s.ctx, itemID, s.userID))

		reloaded, err := s.service.GetWeek(s.ctx, s.userID, s.wednesday)
		require.NoError(s.T(), err)
		assert.Zero(s.T(), reloaded.Total)
	})

	s.Run("UnknownItem_ShouldReturnNotFound", func() {
		err := s.service.RemoveItem(s.ctx, uuid.New(), s.userID)
		assert.Equal(s.T(), errors.CodeGroceryItemNotFound, errors.GetCode(err))
	})
}

func TestGroceryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroceryServiceTestSuite))
}
