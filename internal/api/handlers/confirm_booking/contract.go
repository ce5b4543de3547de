package confirm_booking

import (
	"context"

	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Confirm(ctx context.Context, id int64) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
