package domain

import "github.com/ibbie/MT-BookingService/pkg/types"

// AvailableSlots computes the ordered list of open start times for a service,
// given every non-cancelled booking already stored for the date. A slot is
// open iff the interval [slot, slot+duration(service)) overlaps none of the
// intervals occupied by the existing bookings, each sized by its own service.
//
// The result follows the WorkingHours order. Unknown services yield an empty
// list: at the read endpoint that is the "no slots" contract, and the write
// path rejects unknown services before ever calling this.
//
// Pure function of its inputs; the admission pipeline relies on that to reuse
// it as the final conflict gate inside the insert transaction.
func AvailableSlots(rules ShopRules, service string, existing []*Booking) []types.TimeString {
	duration, ok := rules.ServiceDuration(service)
	if !ok {
		return []types.TimeString{}
	}

	type interval struct {
		start int
		end   int
	}

	busy := make([]interval, 0, len(existing))
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		start, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		d, known := rules.ServiceDuration(b.Service)
		if !known {
			// Строка со снятой с каталога услугой: блокируем по максимальной
			// длительности, чтобы никогда не выдать пересекающийся слот.
			d = maxDuration(rules.ServiceDurations)
		}
		busy = append(busy, interval{start: start, end: start + d})
	}

	slots := make([]types.TimeString, 0, len(rules.WorkingHours))
	for _, slot := range rules.WorkingHours {
		start, err := slot.Minutes()
		if err != nil {
			continue
		}
		end := start + duration

		free := true
		for _, iv := range busy {
			if Overlaps(start, end, iv.start, iv.end) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, slot)
		}
	}

	return slots
}

func maxDuration(durations map[string]int) int {
	max := 0
	for _, d := range durations {
		if d > max {
			max = d
		}
	}
	return max
}
