package mealplan

import "time"

// DayOf truncates a timestamp to its calendar day in UTC. All plan dates
// and week boundaries are kept day-precise in UTC so two entries on the
// same day always compare equal regardless of wall clock.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same UTC calendar day
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// WeekStart returns the Monday of the week containing t, day-precise
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of the week containing t, day-precise
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}
