// Package grocery contains the grocery list domain model and the pure
// derivation of a week's list from its scheduled meals.
package grocery

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Display order for the known store sections. Unknown categories sort
// after these, alphabetically, so nothing a recipe invents ever vanishes.
var categoryOrder = []string{"Produce", "Proteins", "Dairy", "Grains", "Pantry", "Other"}

// Item is one line on a user's weekly grocery list. WeekStart is always
// the Monday of the week the list was generated for.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Quantity  string
	Category  string
	Checked   bool
	WeekStart time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetChecked records the checked-off state. Setting the same state
// twice leaves the item as a single set would, so repeated requests
// are harmless.
func (i *Item) SetChecked(checked bool, now time.Time) {
	i.Checked = checked
	i.UpdatedAt = now
}

// IsOwnedBy reports whether the item belongs to the given user
func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.UserID == userID
}

// CategoryRank returns a category's position in the display order.
// Known sections come first; everything else ranks equally behind them.
func CategoryRank(category string) int {
	for i, c := range categoryOrder {
		if c == category {
			return i
		}
	}
	return len(categoryOrder)
}

// SortItems orders items for display: known categories in store-walk
// order, unknown categories after them alphabetically, names
// alphabetical within a category. Sorts in place.
func SortItems(items []*Item) {
	sort.SliceStable(items, func(a, b int) bool {
		ra, rb := CategoryRank(items[a].Category), CategoryRank(items[b].Category)
		if ra != rb {
			return ra < rb
		}
		if ra == len(categoryOrder) && items[a].Category != items[b].Category {
			return items[a].Category < items[b].Category
		}
		return strings.ToLower(items[a].Name) < strings.ToLower(items[b].Name)
	})
}

// Capitalize upper-cases the first rune of a name for display consistency
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
