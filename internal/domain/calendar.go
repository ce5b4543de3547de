package domain

import "time"

// Calendar rules: pure date/interval arithmetic shared by the availability
// engine and the admission pipeline.

// IsClosedDay returns true if the date falls on one of the closed weekdays.
func IsClosedDay(date time.Time, closed []time.Weekday) bool {
	for _, wd := range closed {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}

// DaysBetween returns the number of whole days from today to date.
// Both values are stripped to local midnight first, so time-of-day
// never produces an off-by-one.
func DaysBetween(today, date time.Time) int {
	return int(DateOnly(date).Sub(DateOnly(today)).Hours() / 24)
}

// WithinBookingWindow returns true if date lies in [today, today+maxDaysAhead].
func WithinBookingWindow(date, today time.Time, maxDaysAhead int) bool {
	days := DaysBetween(today, date)
	return days >= 0 && days <= maxDaysAhead
}

// Overlaps reports whether two half-open minute intervals intersect.
// Touching endpoints do not overlap: a booking ending at 10:00 and one
// starting at 10:00 are compatible.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
