package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsClosedDay(t *testing.T) {
	closed := []time.Weekday{time.Sunday}

	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsClosedDay(sunday, closed))
	assert.False(t, IsClosedDay(monday, closed))
	assert.False(t, IsClosedDay(sunday, nil))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	// Вечер сегодня, утро завтра: все равно ровно один день
	today := time.Date(2025, 10, 13, 23, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 10, 14, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(today, tomorrow))
	assert.Equal(t, 0, DaysBetween(today, today))
	assert.Equal(t, -1, DaysBetween(tomorrow, today))
}

func TestWithinBookingWindow(t *testing.T) {
	today := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", today, true},
		{"last day of window", today.AddDate(0, 0, 30), true},
		{"one past the window", today.AddDate(0, 0, 31), false},
		{"yesterday", today.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinBookingWindow(tt.date, today, 30))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{"identical", 540, 570, 540, 570, true},
		{"partial", 540, 585, 570, 600, true},
		{"contained", 540, 600, 555, 570, true},
		{"touching endpoints", 540, 570, 570, 600, false},
		{"disjoint", 540, 570, 600, 630, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.startA, tt.endA, tt.startB, tt.endB))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestDateOnly(t *testing.T) {
	moment := time.Date(2025, 10, 13, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), DateOnly(moment))
}
