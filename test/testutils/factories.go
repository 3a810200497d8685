// Package testutils provides test data factories and in-memory fakes
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
)

// RecipeFactory creates test recipes with plausible data
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a recipe factory with a seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe builds a valid public recipe owned by nobody
func (f *RecipeFactory) Recipe() *recipe.Recipe {
	now := time.Now()
	return &recipe.Recipe{
		ID:          uuid.New(),
		Name:        f.faker.Dinner(),
		Description: f.faker.Sentence(8),
		PrepTime:    f.faker.Number(5, 30),
		CookTime:    f.faker.Number(10, 60),
		Servings:    f.faker.Number(1, 6),
		Nutrition: recipe.Nutrition{
			Calories: float64(f.faker.Number(150, 900)),
			Protein:  float64(f.faker.Number(5, 60)),
			Carbs:    float64(f.faker.Number(10, 100)),
			Fat:      float64(f.faker.Number(3, 40)),
			Fiber:    float64(f.faker.Number(0, 15)),
		},
		Ingredients: []recipe.Ingredient{
			{Name: f.faker.Fruit(), Amount: "1 cup", Category: "Produce"},
			{Name: f.faker.Vegetable(), Amount: "2", Category: "Produce"},
		},
		Instructions: []string{f.faker.Sentence(6), f.faker.Sentence(6)},
		IsPublic:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecipeWithNutrition builds a recipe with exact macro values
func (f *RecipeFactory) RecipeWithNutrition(n recipe.Nutrition) *recipe.Recipe {
	r := f.Recipe()
	r.Nutrition = n
	return r
}

// OwnedRecipe builds a private recipe owned by the given user
func (f *RecipeFactory) OwnedRecipe(ownerID uuid.UUID) *recipe.Recipe {
	r := f.Recipe()
	r.CreatedBy = &ownerID
	r.IsPublic = false
	return r
}

// Entry builds a meal plan entry referencing the given recipe
func (f *RecipeFactory) Entry(userID uuid.UUID, r *recipe.Recipe, date time.Time, slot mealplan.Slot) *mealplan.Entry {
	now := time.Now()
	return &mealplan.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  r.ID,
		Date:      mealplan.DayOf(date),
		Slot:      slot,
		Servings:  1,
		CreatedAt: now,
		UpdatedAt: now,
		Recipe:    r,
	}
}

// User builds a user with default goals
func (f *RecipeFactory) User() *user.User {
	u, _ := user.New(f.faker.Email(), "$2a$10$test-hash", f.faker.Name())
	return u
}
