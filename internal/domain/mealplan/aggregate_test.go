package mealplan_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/test/testutils"
)

// AggregateTestSuite provides a test suite for nutrition aggregation
type AggregateTestSuite struct {
	suite.Suite
	factory *testutils.RecipeFactory
}

// SetupSuite initializes the test suite
func (s *AggregateTestSuite) SetupSuite() {
	s.factory = testutils.NewRecipeFactory(42)
}

func (s *AggregateTestSuite) entry(n recipe.Nutrition, servings float64, date time.Time, slot mealplan.Slot) *mealplan.Entry {
	r := s.factory.RecipeWithNutrition(n)
	e := s.factory.Entry(uuid.New(), r, date, slot)
	e.Servings = servings
	return e
}

// TestComputeNutrition tests summation over entries
func (s *AggregateTestSuite) TestComputeNutrition() {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	s.Run("NoEntries_ShouldReturnZeroTotals", func() {
		totals, err := mealplan.ComputeNutrition(nil)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), mealplan.Totals{}, totals)
	})

	s.Run("TwoEntries_ShouldSumScaledByServings", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{Calories: 400, Protein: 30, Carbs: 40, Fat: 10, Fiber: 5}, 1, day, mealplan.SlotBreakfast),
			s.entry(recipe.Nutrition{Calories: 600, Protein: 40, Carbs: 50, Fat: 20, Fiber: 8}, 1.5, day, mealplan.SlotLunch),
		}

		totals, err := mealplan.ComputeNutrition(entries)
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 1300, totals.Calories, 1e-9)
		assert.InDelta(s.T(), 90, totals.Protein, 1e-9)
		assert.InDelta(s.T(), 115, totals.Carbs, 1e-9)
		assert.InDelta(s.T(), 40, totals.Fat, 1e-9)
		assert.InDelta(s.T(), 17, totals.Fiber, 1e-9)
	})

	s.Run("DeletedRecipe_ShouldContributeZero", func() {
		withRecipe := s.entry(recipe.Nutrition{Calories: 500}, 1, day, mealplan.SlotDinner)
		orphaned := s.entry(recipe.Nutrition{Calories: 999}, 1, day, mealplan.SlotLunch)
		orphaned.Recipe = nil

		totals, err := mealplan.ComputeNutrition([]*mealplan.Entry{withRecipe, orphaned})
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 500, totals.Calories, 1e-9)
	})

	s.Run("EntryOrder_ShouldNotAffectTotals", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{Calories: 100, Protein: 10}, 1, day, mealplan.SlotBreakfast),
			s.entry(recipe.Nutrition{Calories: 200, Protein: 20}, 2, day, mealplan.SlotLunch),
			s.entry(recipe.Nutrition{Calories: 300, Protein: 30}, 0.5, day, mealplan.SlotDinner),
		}
		want, err := mealplan.ComputeNutrition(entries)
		require.NoError(s.T(), err)

		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 10; i++ {
			rng.Shuffle(len(entries), func(a, b int) {
				entries[a], entries[b] = entries[b], entries[a]
			})
			got, err := mealplan.ComputeNutrition(entries)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), want, got)
		}
	})

	s.Run("ConsumedFilter_ShouldKeepOnlyEatenMeals", func() {
		eaten := s.entry(recipe.Nutrition{Calories: 350}, 1, day, mealplan.SlotBreakfast)
		eaten.SetConsumed(true, time.Now())
		planned := s.entry(recipe.Nutrition{Calories: 650}, 1, day, mealplan.SlotDinner)

		totals, err := mealplan.ComputeNutrition([]*mealplan.Entry{eaten, planned}, mealplan.Consumed)
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 350, totals.Calories, 1e-9)
	})

	s.Run("ComplementaryFilters_ShouldSumToUnfilteredTotals", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{Calories: 300, Protein: 25}, 1, day, mealplan.SlotBreakfast),
			s.entry(recipe.Nutrition{Calories: 450, Protein: 15}, 2, day, mealplan.SlotLunch),
			s.entry(recipe.Nutrition{Calories: 600, Protein: 35}, 1, day, mealplan.SlotDinner),
		}
		entries[0].SetConsumed(true, time.Now())
		entries[2].SetConsumed(true, time.Now())

		all, err := mealplan.ComputeNutrition(entries)
		require.NoError(s.T(), err)
		eaten, err := mealplan.ComputeNutrition(entries, mealplan.Consumed)
		require.NoError(s.T(), err)
		notEaten, err := mealplan.ComputeNutrition(entries, func(e *mealplan.Entry) bool {
			return !e.Consumed
		})
		require.NoError(s.T(), err)

		assert.Equal(s.T(), all, eaten.Add(notEaten))
	})

	s.Run("OnDateFilter_ShouldKeepOnlyMatchingDay", func() {
		today := s.entry(recipe.Nutrition{Calories: 400}, 1, day, mealplan.SlotLunch)
		tomorrow := s.entry(recipe.Nutrition{Calories: 700}, 1, day.AddDate(0, 0, 1), mealplan.SlotLunch)

		totals, err := mealplan.ComputeNutrition([]*mealplan.Entry{today, tomorrow}, mealplan.OnDate(day))
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 400, totals.Calories, 1e-9)
	})

	s.Run("NegativeMacro_ShouldFailWholeComputation", func() {
		good := s.entry(recipe.Nutrition{Calories: 400}, 1, day, mealplan.SlotBreakfast)
		bad := s.entry(recipe.Nutrition{Calories: -5}, 1, day, mealplan.SlotLunch)

		_, err := mealplan.ComputeNutrition([]*mealplan.Entry{good, bad})
		assert.ErrorIs(s.T(), err, mealplan.ErrMalformedNutrition)
	})

	s.Run("NonFiniteMacro_ShouldFailWholeComputation", func() {
		bad := s.entry(recipe.Nutrition{Protein: math.NaN()}, 1, day, mealplan.SlotLunch)

		_, err := mealplan.ComputeNutrition([]*mealplan.Entry{bad})
		assert.ErrorIs(s.T(), err, mealplan.ErrMalformedNutrition)
	})

	s.Run("InvalidServings_ShouldFailWholeComputation", func() {
		bad := s.entry(recipe.Nutrition{Calories: 100}, 1, day, mealplan.SlotLunch)
		bad.Servings = 0

		_, err := mealplan.ComputeNutrition([]*mealplan.Entry{bad})
		assert.ErrorIs(s.T(), err, mealplan.ErrInvalidServings)
	})
}

// TestOrderMealsForDay tests day ordering by slot
func (s *AggregateTestSuite) TestOrderMealsForDay() {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	s.Run("ScrambledSlots_ShouldSortIntoDayOrder", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotDinner),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotBreakfast),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotAfternoonSnack),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotLunch),
		}

		ordered := mealplan.OrderMealsForDay(entries)
		got := make([]mealplan.Slot, len(ordered))
		for i, e := range ordered {
			got[i] = e.Slot
		}
		assert.Equal(s.T(), []mealplan.Slot{
			mealplan.SlotBreakfast,
			mealplan.SlotLunch,
			mealplan.SlotAfternoonSnack,
			mealplan.SlotDinner,
		}, got)
	})

	s.Run("UnknownSlot_ShouldLandAfterKnownOnes", func() {
		stranger := s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotLunch)
		stranger.Slot = mealplan.Slot("midnight_feast")
		entries := []*mealplan.Entry{
			stranger,
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotEveningSnack),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotBreakfast),
		}

		ordered := mealplan.OrderMealsForDay(entries)
		assert.Equal(s.T(), mealplan.Slot("midnight_feast"), ordered[len(ordered)-1].Slot)
	})

	s.Run("AlreadyOrdered_ShouldBeStable", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotBreakfast),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotLunch),
		}
		once := mealplan.OrderMealsForDay(entries)
		twice := mealplan.OrderMealsForDay(once)
		assert.Equal(s.T(), once, twice)
	})

	s.Run("Input_ShouldNotBeMutated", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotDinner),
			s.entry(recipe.Nutrition{}, 1, day, mealplan.SlotBreakfast),
		}
		mealplan.OrderMealsForDay(entries)
		assert.Equal(s.T(), mealplan.SlotDinner, entries[0].Slot)
	})
}

// TestWeeklySeries tests the day-by-day series
func (s *AggregateTestSuite) TestWeeklySeries() {
	ref := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	s.Run("NoEntries_ShouldYieldZeroFilledWeek", func() {
		series, err := mealplan.WeeklySeries(nil, ref, 7)
		require.NoError(s.T(), err)

		var points []mealplan.DayTotals
		for day := range series {
			points = append(points, day)
		}
		require.Len(s.T(), points, 7)
		assert.Equal(s.T(), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), points[0].Date)
		assert.Equal(s.T(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), points[6].Date)
		for _, p := range points {
			assert.Equal(s.T(), mealplan.Totals{}, p.Totals)
		}
	})

	s.Run("EntriesOnTwoDays_ShouldBucketByDay", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{Calories: 500}, 1, ref.AddDate(0, 0, -2), mealplan.SlotLunch),
			s.entry(recipe.Nutrition{Calories: 300}, 2, ref.AddDate(0, 0, -2), mealplan.SlotDinner),
			s.entry(recipe.Nutrition{Calories: 450}, 1, ref, mealplan.SlotBreakfast),
		}

		series, err := mealplan.WeeklySeries(entries, ref, 7)
		require.NoError(s.T(), err)

		var points []mealplan.DayTotals
		for day := range series {
			points = append(points, day)
		}
		require.Len(s.T(), points, 7)
		assert.InDelta(s.T(), 1100, points[4].Totals.Calories, 1e-9)
		assert.InDelta(s.T(), 450, points[6].Totals.Calories, 1e-9)
		assert.Zero(s.T(), points[0].Totals.Calories)
	})

	s.Run("Sequence_ShouldBeRestartable", func() {
		entries := []*mealplan.Entry{
			s.entry(recipe.Nutrition{Calories: 200}, 1, ref, mealplan.SlotLunch),
		}
		series, err := mealplan.WeeklySeries(entries, ref, 7)
		require.NoError(s.T(), err)

		first, second := 0, 0
		for range series {
			first++
		}
		for range series {
			second++
		}
		assert.Equal(s.T(), 7, first)
		assert.Equal(s.T(), 7, second)
	})

	s.Run("EarlyBreak_ShouldStopCleanly", func() {
		series, err := mealplan.WeeklySeries(nil, ref, 7)
		require.NoError(s.T(), err)

		count := 0
		for range series {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(s.T(), 3, count)
	})

	s.Run("NonPositiveLength_ShouldReturnError", func() {
		_, err := mealplan.WeeklySeries(nil, ref, 0)
		assert.Error(s.T(), err)
	})

	s.Run("MalformedEntry_ShouldFailUpFront", func() {
		bad := s.entry(recipe.Nutrition{Fat: -1}, 1, ref, mealplan.SlotLunch)
		_, err := mealplan.WeeklySeries([]*mealplan.Entry{bad}, ref, 7)
		assert.ErrorIs(s.T(), err, mealplan.ErrMalformedNutrition)
	})
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}
