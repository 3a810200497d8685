package grocery

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/recipe"
)

// Line is a derived grocery need before it becomes a persisted Item
type Line struct {
	Name     string
	Quantity string
	Category string
}

// Derive flattens a week of scheduled meals into deduplicated grocery
// lines. Ingredients are merged case-insensitively by name; the first
// occurrence wins, keeping its quantity text verbatim and its category.
// Quantities are free text and never summed. Display names are the
// lower-cased merge key with the first rune upper-cased, so "OLIVE Oil"
// renders as "Olive oil". Nameless ingredients and entries whose recipe
// is gone are skipped.
func Derive(entries []*mealplan.Entry) []Line {
	seen := make(map[string]struct{})
	var lines []Line

	for _, e := range entries {
		if e.Recipe == nil {
			continue
		}
		for _, ing := range e.Recipe.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			category := ing.Category
			if category == "" {
				category = recipe.DefaultCategory
			}
			lines = append(lines, Line{
				Name:     Capitalize(key),
				Quantity: ing.Amount,
				Category: category,
			})
		}
	}
	return lines
}

// BuildItems materializes derived lines into items for one user's week.
// The week start is normalized to Monday regardless of the day passed in.
func BuildItems(userID uuid.UUID, week time.Time, lines []Line) []*Item {
	weekStart := mealplan.WeekStart(week)
	now := time.Now()

	items := make([]*Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, &Item{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Category:  l.Category,
			WeekStart: weekStart,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}
