package gorm

import (
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
)

// RecipeToModel converts a domain recipe to its GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientList, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = IngredientRecord{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Category: ing.Category,
		}
	}

	return &RecipeModel{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		CreatedBy:   r.CreatedBy,
		IsPublic:    r.IsPublic,
		Nutrition: NutritionModel{
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Carbs:    r.Nutrition.Carbs,
			Fat:      r.Nutrition.Fat,
			Fiber:    r.Nutrition.Fiber,
		},
		Ingredients:     ingredients,
		Instructions:    StringSlice(r.Instructions),
		Tags:            StringSlice(r.Tags),
		Allergens:       StringSlice(r.Allergens),
		PrepTimeMinutes: r.PrepTime,
		CookTimeMinutes: r.CookTime,
		Servings:        r.Servings,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		ingredients[i] = recipe.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Category: ing.Category,
		}
	}

	return &recipe.Recipe{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		PrepTime:    m.PrepTimeMinutes,
		CookTime:    m.CookTimeMinutes,
		Servings:    m.Servings,
		Nutrition: recipe.Nutrition{
			Calories: m.Nutrition.Calories,
			Protein:  m.Nutrition.Protein,
			Carbs:    m.Nutrition.Carbs,
			Fat:      m.Nutrition.Fat,
			Fiber:    m.Nutrition.Fiber,
		},
		Ingredients:  ingredients,
		Instructions: m.Instructions,
		Tags:         m.Tags,
		Allergens:    m.Allergens,
		CreatedBy:    m.CreatedBy,
		IsPublic:     m.IsPublic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EntryToModel converts a domain meal plan entry to its GORM model
func EntryToModel(e *mealplan.Entry) *MealEntryModel {
	return &MealEntryModel{
		ID:         e.ID,
		UserID:     e.UserID,
		RecipeID:   e.RecipeID,
		PlanDate:   mealplan.DayOf(e.Date),
		Slot:       string(e.Slot),
		Servings:   e.Servings,
		Consumed:   e.Consumed,
		ConsumedAt: e.ConsumedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ModelToEntry converts a GORM model to a domain meal plan entry.
// The recipe association is carried over when preloaded.
func ModelToEntry(m *MealEntryModel) *mealplan.Entry {
	e := &mealplan.Entry{
		ID:         m.ID,
		UserID:     m.UserID,
		RecipeID:   m.RecipeID,
		Date:       mealplan.DayOf(m.PlanDate),
		Slot:       mealplan.Slot(m.Slot),
		Servings:   m.Servings,
		Consumed:   m.Consumed,
		ConsumedAt: m.ConsumedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Recipe != nil {
		e.Recipe = ModelToRecipe(m.Recipe)
	}
	return e
}

// ItemToModel converts a domain grocery item to its GORM model
func ItemToModel(i *grocery.Item) *GroceryItemModel {
	return &GroceryItemModel{
		ID:        i.ID,
		UserID:    i.UserID,
		WeekStart: mealplan.DayOf(i.WeekStart),
		Name:      i.Name,
		Quantity:  i.Quantity,
		Category:  i.Category,
		Checked:   i.Checked,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ModelToItem converts a GORM model to a domain grocery item
func ModelToItem(m *GroceryItemModel) *grocery.Item {
	return &grocery.Item{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Category:  m.Category,
		Checked:   m.Checked,
		WeekStart: mealplan.DayOf(m.WeekStart),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Goals: GoalsModel{
			Calories: u.Goals.Calories,
			Protein:  u.Goals.Protein,
			Carbs:    u.Goals.Carbs,
			Fat:      u.Goals.Fat,
			Fiber:    u.Goals.Fiber,
		},
		DietaryPreferences: StringSlice(u.DietaryPreferences),
		Allergies:          StringSlice(u.Allergies),
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Role:         user.Role(m.Role),
		Goals: user.Goals{
			Calories: m.Goals.Calories,
			Protein:  m.Goals.Protein,
			Carbs:    m.Goals.Carbs,
			Fat:      m.Goals.Fat,
			Fiber:    m.Goals.Fiber,
		},
		DietaryPreferences: m.DietaryPreferences,
		Allergies:          m.Allergies,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
