package mealplan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/platewise/internal/domain/mealplan"
)

// WeekTestSuite provides a test suite for calendar day and week helpers
type WeekTestSuite struct {
	suite.Suite
}

// TestDayOf tests day-precision truncation
func (s *WeekTestSuite) TestDayOf() {
	s.Run("Timestamp_ShouldTruncateToUTCMidnight", func() {
		ts := time.Date(2026, 3, 14, 20, 45, 12, 999, time.FixedZone("CET", 3600))
		day := mealplan.DayOf(ts)

		assert.Equal(s.T(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), day)
		assert.Equal(s.T(), time.UTC, day.Location())
	})

	s.Run("SameDayDifferentClock_ShouldCompareEqual", func() {
		morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC)
		assert.True(s.T(), mealplan.SameDay(morning, evening))
	})

	s.Run("AdjacentDays_ShouldNotCompareEqual", func() {
		a := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
		b := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		assert.False(s.T(), mealplan.SameDay(a, b))
	})
}

// TestWeekBoundaries tests Monday-based week normalization
func (s *WeekTestSuite) TestWeekBoundaries() {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	s.Run("Wednesday_ShouldNormalizeToPrecedingMonday", func() {
		wednesday := time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)
		assert.Equal(s.T(), monday, mealplan.WeekStart(wednesday))
	})

	s.Run("Monday_ShouldBeItsOwnWeekStart", func() {
		assert.Equal(s.T(), monday, mealplan.WeekStart(monday.Add(5*time.Hour)))
	})

	s.Run("Sunday_ShouldBelongToPrecedingMonday", func() {
		sunday := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		assert.Equal(s.T(), monday, mealplan.WeekStart(sunday))
	})

	s.Run("WeekEnd_ShouldBeSundayOfSameWeek", func() {
		wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
		assert.Equal(s.T(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mealplan.WeekEnd(wednesday))
	})
}

func TestWeekTestSuite(t *testing.T) {
	suite.Run(t, new(WeekTestSuite))
}
