package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GroceryService defines the use cases for weekly grocery lists
type GroceryService interface {
	// RegenerateWeek rebuilds the list for the week containing the
	// date from that week's scheduled meals, replacing any existing
	// list. Manual check-offs on replaced items are lost.
	RegenerateWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*GroceryListDTO, error)

	GetWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*GroceryListDTO, error)

	// ToggleItem sets an item's checked-off state to the given value.
	// Repeating the same request leaves the item unchanged.
	ToggleItem(ctx context.Context, itemID, userID uuid.UUID, checked bool) (*GroceryItemDTO, error)

	RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error
}

// GroceryItemDTO is the data transfer object for one list line
type GroceryItemDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Category string    `json:"category"`
	Checked  bool      `json:"checked"`
}

// GroceryCategoryDTO groups a week's items under one store section
type GroceryCategoryDTO struct {
	Category string           `json:"category"`
	Items    []GroceryItemDTO `json:"items"`
}

// GroceryListDTO is a user's list for one week, grouped by category in
// display order
type GroceryListDTO struct {
	WeekStart  string               `json:"week_start"`
	Categories []GroceryCategoryDTO `json:"categories"`
	Total      int                  `json:"total"`
	Checked    int                  `json:"checked"`
}
