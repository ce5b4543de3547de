package models

import (
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Date      string `json:"date"` // "2025-10-15"
	Time      string `json:"time"` // "10:00"
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"` // ISO 8601
	UpdatedAt string `json:"updatedAt"` // ISO 8601
}

// ScheduleResponse расписание на день
type ScheduleResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse агрегаты для админской панели
type StatsResponse struct {
	CompletedBookings int64 `json:"completedBookings"` // Количество подтвержденных записей
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Service:   b.Service,
		Date:      b.BookingDate.Format(domain.DateFormat),
		Time:      b.StartTime.String(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}
