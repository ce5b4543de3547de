package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusPredicates(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}

	// Слот занимают и pending, и confirmed
	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, cancelled.IsCancelled())
	assert.False(t, pending.IsCancelled())
}

func TestValidStatuses(t *testing.T) {
	assert.Equal(t, []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled}, ValidStatuses)

	for _, status := range ValidStatuses {
		b := &Booking{Status: status}
		assert.Equal(t, b.IsActive(), !b.IsCancelled())
	}
}
