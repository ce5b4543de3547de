package export_csv

import (
	"context"

	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Export(ctx context.Context, filter domain.ExportFilter) ([]models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
