// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
	"github.com/platewise/platewise/internal/domain/user"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error)

	// FindVisible returns recipes the user may see: public ones plus
	// their own, filtered and paginated by the criteria.
	FindVisible(ctx context.Context, userID uuid.UUID, criteria SearchCriteria) ([]*recipe.Recipe, int, error)

	BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error
}

// SearchCriteria defines filter parameters for recipe queries
type SearchCriteria struct {
	Query            string
	Tags             []string
	MaxCalories      *float64
	ExcludeAllergens []string
	Offset           int
	Limit            int
	OrderBy          string
	OrderDir         string
}

// MealPlanRepository defines the interface for meal calendar persistence.
// Implementations must resolve each entry's recipe on reads.
type MealPlanRepository interface {
	// Upsert schedules a meal. When the user already has an entry for
	// the same (date, slot) the existing entry is replaced in place,
	// keeping its identity.
	Upsert(ctx context.Context, entry *mealplan.Entry) error

	Update(ctx context.Context, entry *mealplan.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error)

	// FindRange returns a user's entries with from <= date <= to
	FindRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error)
}

// GroceryRepository defines the interface for grocery list persistence
type GroceryRepository interface {
	// ReplaceWeek atomically swaps a user's list for one week: the old
	// items are removed and the new ones inserted in a single
	// transaction, so a failure never leaves a half-built list.
	ReplaceWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time, items []*grocery.Item) error

	FindWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]*grocery.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*grocery.Item, error)
	Update(ctx context.Context, item *grocery.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	Update(ctx context.Context, user *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string) (int64, error)
}

// StorageService defines the interface for file storage
type StorageService interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
