// Package mealplan contains the weekly meal calendar domain model and the
// pure nutrition aggregation logic built on top of it.
package mealplan

import "strings"

// Slot identifies a meal position within a day
type Slot string

// The six recognized slots in their canonical day order
const (
	SlotBreakfast      Slot = "breakfast"
	SlotMorningSnack   Slot = "morning_snack"
	SlotLunch          Slot = "lunch"
	SlotAfternoonSnack Slot = "afternoon_snack"
	SlotDinner         Slot = "dinner"
	SlotEveningSnack   Slot = "evening_snack"
)

var slotOrder = []Slot{
	SlotBreakfast,
	SlotMorningSnack,
	SlotLunch,
	SlotAfternoonSnack,
	SlotDinner,
	SlotEveningSnack,
}

var slotLabels = map[Slot]string{
	SlotBreakfast:      "Breakfast",
	SlotMorningSnack:   "Morning Snack",
	SlotLunch:          "Lunch",
	SlotAfternoonSnack: "Afternoon Snack",
	SlotDinner:         "Dinner",
	SlotEveningSnack:   "Evening Snack",
}

var slotTimes = map[Slot]string{
	SlotBreakfast:      "7:00 AM",
	SlotMorningSnack:   "10:00 AM",
	SlotLunch:          "12:30 PM",
	SlotAfternoonSnack: "3:30 PM",
	SlotDinner:         "7:00 PM",
	SlotEveningSnack:   "9:00 PM",
}

// Slots returns the recognized slots in day order
func Slots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// ParseSlot normalizes and validates a slot string
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	if !slot.Valid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

// Valid reports whether the slot is one of the six recognized values
func (s Slot) Valid() bool {
	_, ok := slotLabels[s]
	return ok
}

// Rank returns the slot's position in the day. Unrecognized slots rank
// after every recognized one so they never displace real meals.
func (s Slot) Rank() int {
	for i, v := range slotOrder {
		if v == s {
			return i
		}
	}
	return len(slotOrder)
}

// Label returns the display name for the slot
func (s Slot) Label() string {
	if l, ok := slotLabels[s]; ok {
		return l
	}
	return string(s)
}

// TypicalTime returns the conventional clock time shown next to the slot
func (s Slot) TypicalTime() string {
	return slotTimes[s]
}
