package get_stats

import (
	"context"

	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
