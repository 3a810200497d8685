package insights_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	insightsapp "github.com/platewise/platewise/internal/application/insights"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
	"github.com/platewise/platewise/internal/infrastructure/persistence/memory"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/test/testutils"
)

// InsightsServiceTestSuite provides a test suite for nutrition insights
type InsightsServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	factory *testutils.RecipeFactory
	recipes *testutils.MemoryRecipeRepository
	plans   *testutils.MemoryMealPlanRepository
	users   *testutils.MemoryUserRepository
	ai      *testutils.StubAIService
	service inbound.InsightsService
	userID  uuid.UUID
}

// SetupTest wires fresh repositories and a fresh cache for every test
func (s *InsightsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.factory = testutils.NewRecipeFactory(42)
	s.recipes = testutils.NewMemoryRecipeRepository()
	s.plans = testutils.NewMemoryMealPlanRepository(s.recipes)
	s.users = testutils.NewMemoryUserRepository()
	s.ai = &testutils.StubAIService{}
	s.service = insightsapp.NewInsightsService(
		s.plans, s.recipes, s.users, memory.NewCacheRepository(), s.ai, time.Minute, zap.NewNop())

	u, err := user.New("taylor@example.com", "hash", "Taylor")
	require.NoError(s.T(), err)
	u.Goals = user.Goals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65, Fiber: 30}
	require.NoError(s.T(), s.users.Create(s.ctx, u))
	s.userID = u.ID
}

func (s *InsightsServiceTestSuite) schedule(n recipe.Nutrition, date time.Time, slot mealplan.Slot, consumed bool) {
	r := s.factory.RecipeWithNutrition(n)
	require.NoError(s.T(), s.recipes.Create(s.ctx, r))

	entry := s.factory.Entry(s.userID, r, date, slot)
	if consumed {
		entry.SetConsumed(true, time.Now())
	}
	require.NoError(s.T(), s.plans.Upsert(s.ctx, entry))
}

// TestDailyNutrition tests the day's progress against goals
func (s *InsightsServiceTestSuite) TestDailyNutrition() {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	s.Run("ConsumedAndPlanned_ShouldBeTrackedSeparately", func() {
		s.schedule(recipe.Nutrition{Calories: 500, Protein: 40}, day, mealplan.SlotBreakfast, true)
		s.schedule(recipe.Nutrition{Calories: 700, Protein: 50}, day, mealplan.SlotDinner, false)

		dto, err := s.service.DailyNutrition(s.ctx, s.userID, day)
		require.NoError(s.T(), err)

		assert.InDelta(s.T(), 500, dto.Calories.Consumed, 1e-9)
		assert.InDelta(s.T(), 1200, dto.Calories.Planned, 1e-9)
		assert.InDelta(s.T(), 2000, dto.Calories.Goal, 1e-9)
		assert.InDelta(s.T(), 25, dto.Calories.Percent, 1e-9)
	})

	s.Run("OverGoal_PercentShouldCapAtHundred", func() {
		s.schedule(recipe.Nutrition{Protein: 500}, day, mealplan.SlotLunch, true)

		dto, err := s.service.DailyNutrition(s.ctx, s.userID, day)
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 100, dto.Protein.Percent, 1e-9)
	})

	s.Run("ZeroGoal_PercentShouldStayZero", func() {
		u, err := s.users.FindByID(s.ctx, s.userID)
		require.NoError(s.T(), err)
		u.Goals.Fiber = 0
		require.NoError(s.T(), s.users.Update(s.ctx, u))

		s.schedule(recipe.Nutrition{Fiber: 20}, day, mealplan.SlotMorningSnack, true)

		dto, err := s.service.DailyNutrition(s.ctx, s.userID, day)
		require.NoError(s.T(), err)
		assert.Zero(s.T(), dto.Fiber.Percent)
	})

	s.Run("UnknownUser_ShouldReturnError", func() {
		_, err := s.service.DailyNutrition(s.ctx, uuid.New(), day)
		assert.Error(s.T(), err)
	})
}

// TestWeeklyTrend tests the seven day consumed series
func (s *InsightsServiceTestSuite) TestWeeklyTrend() {
	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	s.Run("Trend_ShouldAlwaysHaveSevenPoints", func() {
		s.schedule(recipe.Nutrition{Calories: 600}, ref.AddDate(0, 0, -3), mealplan.SlotDinner, true)
		s.schedule(recipe.Nutrition{Calories: 900}, ref.AddDate(0, 0, -3), mealplan.SlotLunch, false)
		s.schedule(recipe.Nutrition{Calories: 400}, ref, mealplan.SlotBreakfast, true)

		dto, err := s.service.WeeklyTrend(s.ctx, s.userID, ref)
		require.NoError(s.T(), err)

		assert.Equal(s.T(), "2026-03-09", dto.From)
		assert.Equal(s.T(), "2026-03-15", dto.To)
		require.Len(s.T(), dto.Points, 7)
		assert.InDelta(s.T(), 600, dto.Points[3].Calories, 1e-9, "planned meals should not count")
		assert.InDelta(s.T(), 400, dto.Points[6].Calories, 1e-9)
		assert.Zero(s.T(), dto.Points[0].Calories)
		assert.InDelta(s.T(), 2000, dto.Goals.Calories, 1e-9)
	})
}

// TestRecommendRecipes tests AI-backed recipe suggestions
func (s *InsightsServiceTestSuite) TestRecommendRecipes() {
	seedCandidates := func(n int) []*recipe.Recipe {
		out := make([]*recipe.Recipe, n)
		for i := range out {
			r := s.factory.Recipe()
			require.NoError(s.T(), s.recipes.Create(s.ctx, r))
			out[i] = r
		}
		return out
	}

	newUser := func(email string) uuid.UUID {
		u, err := user.New(email, "hash", "Recommendation Tester")
		require.NoError(s.T(), err)
		require.NoError(s.T(), s.users.Create(s.ctx, u))
		return u.ID
	}

	s.Run("NoCandidates_ShouldReturnEmptyWithoutAICall", func() {
		dtos, err := s.service.RecommendRecipes(s.ctx, newUser("empty@example.com"))
		require.NoError(s.T(), err)
		assert.Empty(s.T(), dtos)
		assert.Zero(s.T(), s.ai.Calls)
	})

	s.Run("ValidPicks_ShouldResolveWithParsedHighlights", func() {
		candidates := seedCandidates(4)
		s.ai.Recommendations = []outbound.Recommendation{
			{RecipeID: candidates[0].ID, Reason: "Lean and filling", NutritionHighlight: "Excellent source of protein"},
			{RecipeID: candidates[1].ID, Reason: "Light dinner", NutritionHighlight: "Packed with fiber and iron"},
			{RecipeID: candidates[2].ID, Reason: "Balanced", NutritionHighlight: "protein, fiber"},
		}

		dtos, err := s.service.RecommendRecipes(s.ctx, s.userID)
		require.NoError(s.T(), err)

		require.Len(s.T(), dtos, 3)
		assert.Equal(s.T(), candidates[0].ID, dtos[0].Recipe.ID)
		assert.Equal(s.T(), "protein", dtos[0].NutritionHighlight)
		assert.Equal(s.T(), "fiber, iron", dtos[1].NutritionHighlight)
	})

	s.Run("HallucinatedPick_ShouldBeDroppedAndToppedUp", func() {
		candidates := seedCandidates(3)
		s.ai.Recommendations = []outbound.Recommendation{
			{RecipeID: uuid.New(), Reason: "Invented recipe", NutritionHighlight: "protein"},
			{RecipeID: candidates[0].ID, Reason: "Real pick", NutritionHighlight: "fiber"},
		}

		dtos, err := s.service.RecommendRecipes(s.ctx, newUser("halluc@example.com"))
		require.NoError(s.T(), err)

		require.Len(s.T(), dtos, 3)
		seen := map[uuid.UUID]bool{}
		for _, d := range dtos {
			assert.False(s.T(), seen[d.Recipe.ID], "recommendations should be distinct")
			seen[d.Recipe.ID] = true
		}
		assert.Equal(s.T(), candidates[0].ID, dtos[0].Recipe.ID)
	})

	s.Run("SecondCall_ShouldBeServedFromCache", func() {
		seedCandidates(3)
		s.ai.Recommendations = nil
		userID := newUser("cached@example.com")

		_, err := s.service.RecommendRecipes(s.ctx, userID)
		require.NoError(s.T(), err)
		callsAfterFirst := s.ai.Calls

		_, err = s.service.RecommendRecipes(s.ctx, userID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), callsAfterFirst, s.ai.Calls, "cached result should not hit the AI service")
	})
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}
