// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID                 uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Email              string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName           string      `gorm:"type:varchar(255)"`
	PasswordHash       string      `gorm:"type:varchar(255);not null"`
	Role               string      `gorm:"type:varchar(50);default:'user'"`
	Goals              GoalsModel  `gorm:"embedded;embeddedPrefix:goal_"`
	DietaryPreferences StringSlice `gorm:"type:json"`
	Allergies          StringSlice `gorm:"type:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relationships
	MealEntries  []MealEntryModel   `gorm:"foreignKey:UserID"`
	GroceryItems []GroceryItemModel `gorm:"foreignKey:UserID"`
}

// GoalsModel represents embedded daily nutrition targets
type GoalsModel struct {
	Calories float64 `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
}

// NutritionModel represents embedded per-serving macros
type NutritionModel struct {
	Calories float64 `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null;index"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:char(36);index"`
	IsPublic    bool       `gorm:"default:true;index"`

	// Nutrition in real columns so list filters can push down to SQL
	Nutrition NutritionModel `gorm:"embedded;embeddedPrefix:nutrition_"`

	Ingredients  IngredientList `gorm:"type:json"`
	Instructions StringSlice    `gorm:"type:json"`
	Tags         StringSlice    `gorm:"type:json"`
	Allergens    StringSlice    `gorm:"type:json"`

	// Timing (stored in minutes)
	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`

	Servings  int `gorm:"default:1"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// MealEntryModel represents the GORM model for scheduled meals.
// The composite unique index enforces one entry per user, day and slot;
// scheduling over it becomes an upsert.
type MealEntryModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_meal_user_date_slot;index"`
	RecipeID   uuid.UUID `gorm:"type:char(36);not null;index"`
	PlanDate   time.Time `gorm:"not null;uniqueIndex:idx_meal_user_date_slot"`
	Slot       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_meal_user_date_slot"`
	Servings   float64   `gorm:"default:1"`
	Consumed   bool      `gorm:"default:false"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships
	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// GroceryItemModel represents the GORM model for grocery list lines
type GroceryItemModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index:idx_grocery_user_week"`
	WeekStart time.Time `gorm:"not null;index:idx_grocery_user_week"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  string    `gorm:"type:varchar(100)"`
	Category  string    `gorm:"type:varchar(100);default:'Other'"`
	Checked   bool      `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IngredientRecord is the persisted shape of one recipe ingredient
type IngredientRecord struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// IngredientList custom type for handling ingredient slices in JSON
type IngredientList []IngredientRecord

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientList", value)
	}
}

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealEntryModel
func (m *MealEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for GroceryItemModel
func (g *GroceryItemModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (MealEntryModel) TableName() string {
	return "meal_entries"
}

func (GroceryItemModel) TableName() string {
	return "grocery_items"
}
