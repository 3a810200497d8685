package testutils

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

// MemoryRecipeRepository is an in-memory RecipeRepository for service tests
type MemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe
}

// NewMemoryRecipeRepository creates an empty in-memory recipe repository
func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{recipes: make(map[uuid.UUID]*recipe.Recipe)}
}

func (r *MemoryRecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[rec.ID] = rec
	return nil
}

func (r *MemoryRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[rec.ID]; !ok {
		return errors.NewRecipeNotFoundError(rec.ID.String())
	}
	r.recipes[rec.ID] = rec
	return nil
}

func (r *MemoryRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[id]; !ok {
		return errors.NewRecipeNotFoundError(id.String())
	}
	delete(r.recipes, id)
	return nil
}

func (r *MemoryRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recipes[id]
	if !ok {
		return nil, errors.NewRecipeNotFoundError(id.String())
	}
	return rec, nil
}

func (r *MemoryRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*recipe.Recipe
	for _, id := range ids {
		if rec, ok := r.recipes[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *MemoryRecipeRepository) FindVisible(ctx context.Context, userID uuid.UUID, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*recipe.Recipe
	for _, rec := range r.recipes {
		if !rec.VisibleTo(userID) {
			continue
		}
		if criteria.Query != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(criteria.Query)) {
			continue
		}
		if criteria.MaxCalories != nil && rec.Nutrition.Calories > *criteria.MaxCalories {
			continue
		}
		if containsAny(rec.Allergens, criteria.ExcludeAllergens) {
			continue
		}
		matched = append(matched, rec)
	}
	total := len(matched)
	if criteria.Offset > len(matched) {
		return nil, total, nil
	}
	matched = matched[criteria.Offset:]
	if criteria.Limit > 0 && criteria.Limit < len(matched) {
		matched = matched[:criteria.Limit]
	}
	return matched, total, nil
}

func (r *MemoryRecipeRepository) BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error {
	for _, rec := range recipes {
		if err := r.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		for _, h := range haystack {
			if strings.EqualFold(h, n) {
				return true
			}
		}
	}
	return false
}

// MemoryMealPlanRepository is an in-memory MealPlanRepository. When a
// recipe repository is attached, reads resolve each entry's recipe the
// way the real adapter preloads it.
type MemoryMealPlanRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*mealplan.Entry
	recipes *MemoryRecipeRepository
}

// NewMemoryMealPlanRepository creates an empty in-memory meal plan repository
func NewMemoryMealPlanRepository(recipes *MemoryRecipeRepository) *MemoryMealPlanRepository {
	return &MemoryMealPlanRepository{
		entries: make(map[uuid.UUID]*mealplan.Entry),
		recipes: recipes,
	}
}

func (r *MemoryMealPlanRepository) Upsert(ctx context.Context, entry *mealplan.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if existing.UserID == entry.UserID &&
			mealplan.SameDay(existing.Date, entry.Date) &&
			existing.Slot == entry.Slot {
			existing.RecipeID = entry.RecipeID
			existing.Servings = entry.Servings
			existing.UpdatedAt = time.Now()
			r.resolve(existing)
			*entry = *existing
			return nil
		}
	}
	stored := *entry
	r.entries[entry.ID] = &stored
	r.resolve(entry)
	return nil
}

func (r *MemoryMealPlanRepository) Update(ctx context.Context, entry *mealplan.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return errors.NewMealPlanNotFoundError(entry.ID.String())
	}
	stored := *entry
	r.entries[entry.ID] = &stored
	return nil
}

func (r *MemoryMealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return errors.NewMealPlanNotFoundError(id.String())
	}
	delete(r.entries, id)
	return nil
}

func (r *MemoryMealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NewMealPlanNotFoundError(id.String())
	}
	out := *entry
	r.resolve(&out)
	return &out, nil
}

func (r *MemoryMealPlanRepository) FindRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	from, to = mealplan.DayOf(from), mealplan.DayOf(to)
	var out []*mealplan.Entry
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		day := mealplan.DayOf(entry.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		copied := *entry
		r.resolve(&copied)
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemoryMealPlanRepository) resolve(entry *mealplan.Entry) {
	if r.recipes == nil {
		return
	}
	if rec, ok := r.recipes.recipes[entry.RecipeID]; ok {
		entry.Recipe = rec
	} else {
		entry.Recipe = nil
	}
}

// MemoryGroceryRepository is an in-memory GroceryRepository
type MemoryGroceryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*grocery.Item
}

// NewMemoryGroceryRepository creates an empty in-memory grocery repository
func NewMemoryGroceryRepository() *MemoryGroceryRepository {
	return &MemoryGroceryRepository{items: make(map[uuid.UUID]*grocery.Item)}
}

func (r *MemoryGroceryRepository) ReplaceWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time, items []*grocery.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID && mealplan.SameDay(item.WeekStart, weekStart) {
			delete(r.items, id)
		}
	}
	for _, item := range items {
		stored := *item
		r.items[item.ID] = &stored
	}
	return nil
}

func (r *MemoryGroceryRepository) FindWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]*grocery.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*grocery.Item
	for _, item := range r.items {
		if item.UserID == userID && mealplan.SameDay(item.WeekStart, weekStart) {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemoryGroceryRepository) FindByID(ctx context.Context, id uuid.UUID) (*grocery.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.NewGroceryItemNotFoundError(id.String())
	}
	copied := *item
	return &copied, nil
}

func (r *MemoryGroceryRepository) Update(ctx context.Context, item *grocery.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.NewGroceryItemNotFoundError(item.ID.String())
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *MemoryGroceryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.NewGroceryItemNotFoundError(id.String())
	}
	delete(r.items, id)
	return nil
}

// MemoryUserRepository is an in-memory UserRepository
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return errors.NewEmailAlreadyExistsError(u.Email)
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return errors.NewUserNotFoundError(u.ID.String())
	}
	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewUserNotFoundError(id.String())
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NewUserNotFoundError(email)
}

func (r *MemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// StubAIService returns canned responses for AI calls
type StubAIService struct {
	Recommendations  []outbound.Recommendation
	CompleteResponse string
	Err              error
	Calls            int
}

func (s *StubAIService) Complete(ctx context.Context, system, prompt string) (string, error) {
	return s.CompleteResponse, s.Err
}

func (s *StubAIService) RecommendRecipes(ctx context.Context, req outbound.RecommendationRequest) ([]outbound.Recommendation, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Recommendations, nil
}

func (s *StubAIService) GenerateRecipeImage(ctx context.Context, recipeName, description string) ([]byte, string, error) {
	return []byte{0x89, 0x50, 0x4e, 0x47}, "image/png", s.Err
}
