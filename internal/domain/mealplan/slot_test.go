package mealplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/platewise/internal/domain/mealplan"
)

// SlotTestSuite provides a test suite for meal slots
type SlotTestSuite struct {
	suite.Suite
}

// TestSlotParsing tests slot string normalization
func (s *SlotTestSuite) TestSlotParsing() {
	s.Run("CanonicalValue_ShouldParse", func() {
		slot, err := mealplan.ParseSlot("breakfast")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), mealplan.SlotBreakfast, slot)
	})

	s.Run("MixedCaseWithWhitespace_ShouldNormalize", func() {
		slot, err := mealplan.ParseSlot("  Afternoon_Snack ")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), mealplan.SlotAfternoonSnack, slot)
	})

	s.Run("UnknownValue_ShouldReturnError", func() {
		_, err := mealplan.ParseSlot("brunch")
		assert.ErrorIs(s.T(), err, mealplan.ErrInvalidSlot)
	})

	s.Run("EmptyValue_ShouldReturnError", func() {
		_, err := mealplan.ParseSlot("")
		assert.ErrorIs(s.T(), err, mealplan.ErrInvalidSlot)
	})
}

// TestSlotOrdering tests the canonical day order
func (s *SlotTestSuite) TestSlotOrdering() {
	s.Run("SixSlots_ShouldRankInDayOrder", func() {
		slots := mealplan.Slots()
		require.Len(s.T(), slots, 6)
		for i := 1; i < len(slots); i++ {
			assert.Less(s.T(), slots[i-1].Rank(), slots[i].Rank(),
				"%s should come before %s", slots[i-1], slots[i])
		}
	})

	s.Run("UnknownSlot_ShouldRankAfterAllKnown", func() {
		unknown := mealplan.Slot("midnight_feast")
		for _, slot := range mealplan.Slots() {
			assert.Greater(s.T(), unknown.Rank(), slot.Rank())
		}
	})
}

// TestSlotMetadata tests display labels and typical times
func (s *SlotTestSuite) TestSlotMetadata() {
	s.Run("KnownSlot_ShouldHaveLabelAndTime", func() {
		assert.Equal(s.T(), "Morning Snack", mealplan.SlotMorningSnack.Label())
		assert.Equal(s.T(), "10:00 AM", mealplan.SlotMorningSnack.TypicalTime())
		assert.Equal(s.T(), "7:00 PM", mealplan.SlotDinner.TypicalTime())
	})

	s.Run("UnknownSlot_ShouldFallBackToRawValue", func() {
		assert.Equal(s.T(), "midnight_feast", mealplan.Slot("midnight_feast").Label())
	})
}

func TestSlotTestSuite(t *testing.T) {
	suite.Run(t, new(SlotTestSuite))
}
