package bookings

import (
	"context"
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetByDateRange(ctx context.Context, filter domain.ExportFilter) ([]*domain.Booking, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	ConfirmPending(ctx context.Context, id int64) (*domain.Booking, error)
	CancelByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// SlotNotifier интерфейс рассылки событий об изменении доступности
type SlotNotifier interface {
	SlotsUpdated(date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
