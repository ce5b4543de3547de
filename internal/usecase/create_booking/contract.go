package create_booking

import (
	"context"
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	CountActiveByDate(ctx context.Context, date time.Time) (int, error)
	HasRecentByPhone(ctx context.Context, phone string, since time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotNotifier интерфейс рассылки событий об изменении доступности
type SlotNotifier interface {
	SlotsUpdated(date time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
