package domain

import (
	"time"

	"github.com/ibbie/MT-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents an appointment request in the system.
// (Service, BookingDate, StartTime) are immutable after creation;
// only Status transitions.
type Booking struct {
	ID          int64
	Name        string
	Phone       string
	Service     string
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Cancelled bookings free both their interval and their capacity count.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if the booking is still awaiting confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// ExportFilter задает границы выборки бронирований для выгрузки
type ExportFilter struct {
	DateFrom *time.Time // Начало периода (опционально, если nil - без ограничения)
	DateTo   *time.Time // Конец периода (опционально, если nil - без ограничения)
}

// ValidStatuses lists every status a stored booking may carry.
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
