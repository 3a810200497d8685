// Package insights provides the application layer for nutrition
// tracking and AI recipe recommendations
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	recipeapp "github.com/platewise/platewise/internal/application/recipe"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

const (
	dateLayout          = "2006-01-02"
	trendDays           = 7
	recommendationCount = 3
	candidatePoolSize   = 50
)

// InsightsService implements the nutrition insight use cases
type InsightsService struct {
	planRepo   outbound.MealPlanRepository
	recipeRepo outbound.RecipeRepository
	userRepo   outbound.UserRepository
	cache      outbound.CacheRepository
	aiService  outbound.AIService
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	planRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	userRepo outbound.UserRepository,
	cache outbound.CacheRepository,
	aiService outbound.AIService,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.InsightsService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &InsightsService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		cache:      cache,
		aiService:  aiService,
		cacheTTL:   cacheTTL,
		logger:     logger.Named("insights-service"),
	}
}

// DailyNutrition compares one day's consumed and planned totals against
// the user's goals
func (s *InsightsService) DailyNutrition(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.DailyNutritionDTO, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := mealplan.DayOf(date)
	entries, err := s.planRepo.FindRange(ctx, userID, day, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load day meals")
	}

	consumed, err := mealplan.ComputeNutrition(entries, mealplan.Consumed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	planned, err := mealplan.ComputeNutrition(entries)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return &inbound.DailyNutritionDTO{
		Date:     day.Format(dateLayout),
		Calories: macroProgress(consumed.Calories, planned.Calories, u.Goals.Calories),
		Protein:  macroProgress(consumed.Protein, planned.Protein, u.Goals.Protein),
		Carbs:    macroProgress(consumed.Carbs, planned.Carbs, u.Goals.Carbs),
		Fat:      macroProgress(consumed.Fat, planned.Fat, u.Goals.Fat),
		Fiber:    macroProgress(consumed.Fiber, planned.Fiber, u.Goals.Fiber),
	}, nil
}

// WeeklyTrend returns consumed totals for the seven days ending at the
// date, inclusive
func (s *InsightsService) WeeklyTrend(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.WeeklyTrendDTO, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	to := mealplan.DayOf(date)
	from := to.AddDate(0, 0, -(trendDays - 1))

	entries, err := s.planRepo.FindRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load trend meals")
	}

	series, err := mealplan.WeeklySeries(entries, to, trendDays, mealplan.Consumed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	points := make([]inbound.TrendPointDTO, 0, trendDays)
	for day := range series {
		points = append(points, inbound.TrendPointDTO{
			Date:     day.Date.Format(dateLayout),
			Calories: day.Totals.Calories,
			Protein:  day.Totals.Protein,
			Carbs:    day.Totals.Carbs,
			Fat:      day.Totals.Fat,
			Fiber:    day.Totals.Fiber,
		})
	}

	return &inbound.WeeklyTrendDTO{
		From:   from.Format(dateLayout),
		To:     to.Format(dateLayout),
		Points: points,
		Goals:  goalsToDTO(u.Goals),
	}, nil
}

// RecommendRecipes returns three AI-picked recipes tuned to the gap
// between today's consumed nutrition and the user's goals. Responses
// are cached briefly per user so repeated dashboard loads don't burn
// AI quota.
func (s *InsightsService) RecommendRecipes(ctx context.Context, userID uuid.UUID) ([]inbound.RecommendationDTO, error) {
	cacheKey := fmt.Sprintf("insights:recommendations:%s", userID)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var dtos []inbound.RecommendationDTO
		if err := json.Unmarshal(cached, &dtos); err == nil {
			return dtos, nil
		}
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	gaps, err := s.nutritionGaps(ctx, u)
	if err != nil {
		return nil, err
	}

	candidates, _, err := s.recipeRepo.FindVisible(ctx, userID, outbound.SearchCriteria{
		ExcludeAllergens: u.Allergies,
		Limit:            candidatePoolSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate recipes")
	}
	if len(candidates) == 0 {
		return []inbound.RecommendationDTO{}, nil
	}

	recs, err := s.aiService.RecommendRecipes(ctx, outbound.RecommendationRequest{
		Goals:       gaps,
		Preferences: u.DietaryPreferences,
		Allergies:   u.Allergies,
		Candidates:  toCandidates(candidates),
	})
	if err != nil {
		return nil, err
	}

	dtos := s.resolveRecommendations(recs, candidates, gaps)

	if payload, err := json.Marshal(dtos); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
			s.logger.Debug("failed to cache recommendations", zap.Error(err))
		}
	}
	return dtos, nil
}

// nutritionGaps computes what the user still needs today, clamped at
// zero once a goal is met
func (s *InsightsService) nutritionGaps(ctx context.Context, u *user.User) (user.Goals, error) {
	today := mealplan.DayOf(time.Now())

	entries, err := s.planRepo.FindRange(ctx, u.ID, today, today)
	if err != nil {
		return user.Goals{}, errors.Wrap(err, "failed to load today's meals")
	}

	consumed, err := mealplan.ComputeNutrition(entries, mealplan.Consumed)
	if err != nil {
		return user.Goals{}, errors.NewValidationError(err.Error())
	}

	return user.Goals{
		Calories: clampZero(u.Goals.Calories - consumed.Calories),
		Protein:  clampZero(u.Goals.Protein - consumed.Protein),
		Carbs:    clampZero(u.Goals.Carbs - consumed.Carbs),
		Fat:      clampZero(u.Goals.Fat - consumed.Fat),
		Fiber:    clampZero(u.Goals.Fiber - consumed.Fiber),
	}, nil
}

// resolveRecommendations maps AI picks back to real recipes, dropping
// hallucinated IDs and topping up from the candidate pool so callers
// always see three results when three recipes exist.
func (s *InsightsService) resolveRecommendations(recs []outbound.Recommendation, candidates []*recipe.Recipe, gaps user.Goals) []inbound.RecommendationDTO {
	byID := make(map[uuid.UUID]*recipe.Recipe, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	used := make(map[uuid.UUID]bool)
	dtos := make([]inbound.RecommendationDTO, 0, recommendationCount)

	for _, rec := range recs {
		if len(dtos) == recommendationCount {
			break
		}
		r, ok := byID[rec.RecipeID]
		if !ok || used[r.ID] {
			s.logger.Debug("dropping unresolvable recommendation",
				zap.String("recipe_id", rec.RecipeID.String()),
			)
			continue
		}
		used[r.ID] = true
		dtos = append(dtos, inbound.RecommendationDTO{
			Recipe:             recipeapp.ToRecipeDTO(r),
			Reason:             rec.Reason,
			NutritionHighlight: strings.Join(ParseNutritionHighlight(rec.NutritionHighlight), ", "),
		})
	}

	for _, c := range candidates {
		if len(dtos) == recommendationCount {
			break
		}
		if used[c.ID] {
			continue
		}
		used[c.ID] = true
		dtos = append(dtos, inbound.RecommendationDTO{
			Recipe:             recipeapp.ToRecipeDTO(c),
			Reason:             "Fits your remaining goals for today",
			NutritionHighlight: topGapNutrient(gaps),
		})
	}
	return dtos
}

// topGapNutrient names the macro the user is furthest from, weighting
// calories down since they dwarf gram-scale macros
func topGapNutrient(gaps user.Goals) string {
	best, bestGap := "protein", gaps.Protein
	for name, gap := range map[string]float64{
		"calories": gaps.Calories / 10,
		"carbs":    gaps.Carbs,
		"fat":      gaps.Fat,
		"fiber":    gaps.Fiber,
	} {
		if gap > bestGap {
			best, bestGap = name, gap
		}
	}
	return best
}

func toCandidates(recipes []*recipe.Recipe) []outbound.RecipeCandidate {
	out := make([]outbound.RecipeCandidate, len(recipes))
	for i, r := range recipes {
		out[i] = outbound.RecipeCandidate{
			ID:        r.ID,
			Name:      r.Name,
			Calories:  r.Nutrition.Calories,
			Protein:   r.Nutrition.Protein,
			Carbs:     r.Nutrition.Carbs,
			Fat:       r.Nutrition.Fat,
			Fiber:     r.Nutrition.Fiber,
			Tags:      r.Tags,
			Allergens: r.Allergens,
		}
	}
	return out
}

func macroProgress(consumed, planned, goal float64) inbound.MacroProgressDTO {
	var percent float64
	if goal > 0 {
		percent = consumed / goal * 100
		if percent > 100 {
			percent = 100
		}
	}
	return inbound.MacroProgressDTO{
		Consumed: consumed,
		Planned:  planned,
		Goal:     goal,
		Percent:  percent,
	}
}

func goalsToDTO(g user.Goals) inbound.NutritionDTO {
	return inbound.NutritionDTO{
		Calories: g.Calories,
		Protein:  g.Protein,
		Carbs:    g.Carbs,
		Fat:      g.Fat,
		Fiber:    g.Fiber,
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
