package get_schedule

import (
	"context"
	"time"

	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Schedule(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
