package grocery_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/test/testutils"
)

// DeriveTestSuite provides a test suite for grocery list derivation
type DeriveTestSuite struct {
	suite.Suite
	factory *testutils.RecipeFactory
}

// SetupSuite initializes the test suite
func (s *DeriveTestSuite) SetupSuite() {
	s.factory = testutils.NewRecipeFactory(42)
}

func (s *DeriveTestSuite) entryWith(ingredients ...recipe.Ingredient) *mealplan.Entry {
	r := s.factory.Recipe()
	r.Ingredients = ingredients
	return s.factory.Entry(uuid.New(), r, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), mealplan.SlotLunch)
}

// TestDerive tests flattening scheduled meals into grocery lines
func (s *DeriveTestSuite) TestDerive() {
	s.Run("EmptyWeek_ShouldYieldNoLines", func() {
		assert.Empty(s.T(), grocery.Derive(nil))
	})

	s.Run("DuplicateIngredient_FirstOccurrenceShouldWin", func() {
		first := s.entryWith(recipe.Ingredient{Name: "chicken breast", Amount: "2 lbs", Category: "Proteins"})
		second := s.entryWith(recipe.Ingredient{Name: "Chicken Breast", Amount: "500 g", Category: "Meat"})

		lines := grocery.Derive([]*mealplan.Entry{first, second})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), "Chicken breast", lines[0].Name)
		assert.Equal(s.T(), "2 lbs", lines[0].Quantity)
		assert.Equal(s.T(), "Proteins", lines[0].Category)
	})

	s.Run("QuantityText_ShouldNeverBeSummed", func() {
		a := s.entryWith(recipe.Ingredient{Name: "rice", Amount: "1 cup"})
		b := s.entryWith(recipe.Ingredient{Name: "rice", Amount: "3 cups"})

		lines := grocery.Derive([]*mealplan.Entry{a, b})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), "1 cup", lines[0].Quantity)
	})

	s.Run("MissingCategory_ShouldDefaultToOther", func() {
		e := s.entryWith(recipe.Ingredient{Name: "mystery sauce", Amount: "1 jar"})

		lines := grocery.Derive([]*mealplan.Entry{e})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), recipe.DefaultCategory, lines[0].Category)
	})

	s.Run("NamelessIngredient_ShouldBeSkipped", func() {
		e := s.entryWith(
			recipe.Ingredient{Name: "   ", Amount: "1"},
			recipe.Ingredient{Name: "olive oil", Amount: "2 tbsp", Category: "Pantry"},
		)

		lines := grocery.Derive([]*mealplan.Entry{e})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), "Olive oil", lines[0].Name)
	})

	s.Run("DeletedRecipe_ShouldContributeNothing", func() {
		e := s.entryWith(recipe.Ingredient{Name: "ghost", Amount: "1"})
		e.Recipe = nil
		assert.Empty(s.T(), grocery.Derive([]*mealplan.Entry{e}))
	})

	s.Run("Names_ShouldBeCapitalized", func() {
		e := s.entryWith(recipe.Ingredient{Name: "éclair dough", Amount: "1 batch", Category: "Grains"})

		lines := grocery.Derive([]*mealplan.Entry{e})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), "Éclair dough", lines[0].Name)
	})

	s.Run("MixedCaseName_ShouldRenderFromLowerCasedKey", func() {
		e := s.entryWith(recipe.Ingredient{Name: "OLIVE Oil", Amount: "2 tbsp", Category: "Pantry"})

		lines := grocery.Derive([]*mealplan.Entry{e})
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), "Olive oil", lines[0].Name)
	})
}

// TestBuildItems tests materializing lines into a week's items
func (s *DeriveTestSuite) TestBuildItems() {
	s.Run("MidWeekDate_ShouldNormalizeToMonday", func() {
		userID := uuid.New()
		thursday := time.Date(2026, 3, 12, 16, 0, 0, 0, time.UTC)

		items := grocery.BuildItems(userID, thursday, []grocery.Line{
			{Name: "Milk", Quantity: "1 gal", Category: "Dairy"},
		})
		require.Len(s.T(), items, 1)
		assert.Equal(s.T(), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), items[0].WeekStart)
		assert.Equal(s.T(), userID, items[0].UserID)
		assert.False(s.T(), items[0].Checked)
	})
}

// TestSortItems tests store-walk display ordering
func (s *DeriveTestSuite) TestSortItems() {
	item := func(name, category string) *grocery.Item {
		return &grocery.Item{ID: uuid.New(), Name: name, Category: category}
	}

	s.Run("KnownCategories_ShouldFollowStoreWalkOrder", func() {
		items := []*grocery.Item{
			item("Flour", "Pantry"),
			item("Milk", "Dairy"),
			item("Apples", "Produce"),
			item("Chicken", "Proteins"),
		}
		grocery.SortItems(items)

		got := make([]string, len(items))
		for i, it := range items {
			got[i] = it.Category
		}
		assert.Equal(s.T(), []string{"Produce", "Proteins", "Dairy", "Pantry"}, got)
	})

	s.Run("UnknownCategories_ShouldSortAlphabeticallyAfterKnown", func() {
		items := []*grocery.Item{
			item("Candles", "Seasonal"),
			item("Batteries", "Hardware"),
			item("Bread", "Grains"),
			item("Soap", "Other"),
		}
		grocery.SortItems(items)

		got := make([]string, len(items))
		for i, it := range items {
			got[i] = it.Category
		}
		assert.Equal(s.T(), []string{"Grains", "Other", "Hardware", "Seasonal"}, got)
	})

	s.Run("WithinCategory_ShouldSortByNameCaseInsensitive", func() {
		items := []*grocery.Item{
			item("zucchini", "Produce"),
			item("Apples", "Produce"),
			item("kale", "Produce"),
		}
		grocery.SortItems(items)

		assert.Equal(s.T(), "Apples", items[0].Name)
		assert.Equal(s.T(), "kale", items[1].Name)
		assert.Equal(s.T(), "zucchini", items[2].Name)
	})
}

// TestItemSetChecked tests recording the checked-off state
func (s *DeriveTestSuite) TestItemSetChecked() {
	s.Run("SetChecked_ShouldRecordGivenState", func() {
		it := &grocery.Item{ID: uuid.New()}
		now := time.Now()

		it.SetChecked(true, now)
		assert.True(s.T(), it.Checked)
		it.SetChecked(false, now.Add(time.Minute))
		assert.False(s.T(), it.Checked)
	})

	s.Run("SetChecked_ShouldBeIdempotent", func() {
		it := &grocery.Item{ID: uuid.New()}
		now := time.Now()

		it.SetChecked(true, now)
		it.SetChecked(true, now.Add(time.Minute))
		assert.True(s.T(), it.Checked, "repeating the same state must not undo it")
	})
}

func TestDeriveTestSuite(t *testing.T) {
	suite.Run(t, new(DeriveTestSuite))
}
