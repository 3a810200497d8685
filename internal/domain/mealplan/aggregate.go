package mealplan

import (
	"fmt"
	"iter"
	"sort"
	"time"
)

// Totals is the nutrition sum over a set of meal plan entries. Each entry
// contributes its recipe's per-serving macros multiplied by servings; an
// entry whose recipe is gone contributes zero.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the component-wise sum of two totals
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
		Fiber:    t.Fiber + o.Fiber,
	}
}

// DayTotals pairs a calendar day with its nutrition totals
type DayTotals struct {
	Date   time.Time `json:"date"`
	Totals Totals    `json:"totals"`
}

// Filter selects which entries participate in an aggregation
type Filter func(*Entry) bool

// Consumed keeps only entries the user marked as eaten
func Consumed(e *Entry) bool {
	return e.Consumed
}

// OnDate keeps only entries scheduled on the given calendar day
func OnDate(date time.Time) Filter {
	day := DayOf(date)
	return func(e *Entry) bool {
		return DayOf(e.Date).Equal(day)
	}
}

// ComputeNutrition sums nutrition over the entries that pass every filter.
// Every entry is validated up front; a malformed entry or recipe fails the
// whole computation rather than silently skewing the totals.
func ComputeNutrition(entries []*Entry, filters ...Filter) (Totals, error) {
	if err := validateForAggregation(entries); err != nil {
		return Totals{}, err
	}

	var totals Totals
	for _, e := range entries {
		if !passes(e, filters) {
			continue
		}
		if e.Recipe == nil {
			continue
		}
		n := e.Recipe.Nutrition
		totals.Calories += n.Calories * e.Servings
		totals.Protein += n.Protein * e.Servings
		totals.Carbs += n.Carbs * e.Servings
		totals.Fat += n.Fat * e.Servings
		totals.Fiber += n.Fiber * e.Servings
	}
	return totals, nil
}

// OrderMealsForDay returns the entries sorted into day order by slot.
// The sort is stable and unrecognized slots land after recognized ones,
// so a slot value from a newer schema version degrades gracefully.
func OrderMealsForDay(entries []*Entry) []*Entry {
	out := make([]*Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Slot.Rank() < out[j].Slot.Rank()
	})
	return out
}

// WeeklySeries builds a day-by-day nutrition series for the `days` days
// ending at ref, inclusive. Days without matching entries yield zero
// totals so the series always has exactly `days` points. The returned
// sequence is restartable; entries are validated and bucketed once.
func WeeklySeries(entries []*Entry, ref time.Time, days int, filters ...Filter) (iter.Seq[DayTotals], error) {
	if days <= 0 {
		return nil, fmt.Errorf("series length must be positive, got %d", days)
	}
	if err := validateForAggregation(entries); err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]Totals)
	for _, e := range entries {
		if !passes(e, filters) || e.Recipe == nil {
			continue
		}
		day := DayOf(e.Date)
		n := e.Recipe.Nutrition
		buckets[day] = buckets[day].Add(Totals{
			Calories: n.Calories * e.Servings,
			Protein:  n.Protein * e.Servings,
			Carbs:    n.Carbs * e.Servings,
			Fat:      n.Fat * e.Servings,
			Fiber:    n.Fiber * e.Servings,
		})
	}

	start := DayOf(ref).AddDate(0, 0, -(days - 1))
	return func(yield func(DayTotals) bool) {
		for i := 0; i < days; i++ {
			day := start.AddDate(0, 0, i)
			if !yield(DayTotals{Date: day, Totals: buckets[day]}) {
				return
			}
		}
	}, nil
}

func passes(e *Entry, filters []Filter) bool {
	for _, f := range filters {
		if !f(e) {
			return false
		}
	}
	return true
}

func validateForAggregation(entries []*Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if e.Recipe != nil {
			if err := e.Recipe.Nutrition.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedNutrition, err)
			}
		}
	}
	return nil
}
