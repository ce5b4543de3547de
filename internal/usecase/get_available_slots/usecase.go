package get_available_slots

import (
	"context"
	"fmt"

	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	bookingRepo  BookingRepository
	rules        domain.ShopRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules domain.ShopRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Контракт чтения мягкий: закрытый день, дата вне окна записи и
// неизвестная услуга дают пустой список, а не ошибку. Ошибкой
// считаются только отсутствующие параметры.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%s",
		req.Date.Format(domain.DateFormat), req.Service)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Service == "" {
		return nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	// 2. Закрытый день, дата вне окна или неизвестная услуга -> пустой список
	now := uc.timeProvider.Now()
	if domain.IsClosedDay(req.Date, uc.rules.ClosedWeekdays) ||
		!domain.WithinBookingWindow(req.Date, now, uc.rules.MaxDaysAhead) ||
		!uc.rules.IsKnownService(req.Service) {
		uc.logger.Info("GetAvailableSlots: no slots for date=%s, service=%s (rule filter)",
			req.Date.Format(domain.DateFormat), req.Service)
		return &Response{
			Date:    req.Date,
			Service: req.Service,
			Slots:   []types.TimeString{},
		}, nil
	}

	// 3. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем открытые слоты
	slots := domain.AvailableSlots(uc.rules, req.Service, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s, service=%s",
		len(slots), req.Date.Format(domain.DateFormat), req.Service)

	return &Response{
		Date:    req.Date,
		Service: req.Service,
		Slots:   slots,
	}, nil
}
