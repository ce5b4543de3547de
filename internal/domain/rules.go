package domain

import (
	"time"

	"github.com/ibbie/MT-BookingService/pkg/types"
)

// ShopRules is the immutable rule set of the shop, loaded once at process
// start and passed explicitly into the availability and admission logic.
type ShopRules struct {
	WorkingHours      []types.TimeString  // Fixed slot grid, chronologically ordered
	ServiceDurations  map[string]int      // Service name -> duration in minutes
	ClosedWeekdays    []time.Weekday      // Days the shop never opens
	MaxBookingsPerDay int                 // Cap on non-cancelled bookings per date
	MaxDaysAhead      int                 // Booking window: [today, today+MaxDaysAhead]
	CooldownMinutes   int                 // Per-phone cooldown between requests
}

// ServiceDuration returns the duration of a known service and whether
// the service is part of the catalogue.
func (r *ShopRules) ServiceDuration(service string) (int, bool) {
	d, ok := r.ServiceDurations[service]
	return d, ok
}

// IsKnownService returns true if the service is part of the catalogue
func (r *ShopRules) IsKnownService(service string) bool {
	_, ok := r.ServiceDurations[service]
	return ok
}

// DefaultRules returns the shop's stock rule tables: half-hour grid from
// 09:00 to 17:00 with a lunch break, closed on Sundays, 20 bookings a day,
// 30 days ahead, 5 minute per-phone cooldown.
func DefaultRules() ShopRules {
	return ShopRules{
		WorkingHours: []types.TimeString{
			"09:00", "09:30",
			"10:00", "10:30",
			"11:00", "11:30",
			"12:00", "12:30",
			"14:00", "14:30",
			"15:00", "15:30",
			"16:00", "16:30",
			"17:00",
		},
		ServiceDurations: map[string]int{
			"Haircut":      30,
			"Fade":         45,
			"Beard":        30,
			"Full Package": 60,
		},
		ClosedWeekdays:    []time.Weekday{time.Sunday},
		MaxBookingsPerDay: 20,
		MaxDaysAhead:      30,
		CooldownMinutes:   5,
	}
}
