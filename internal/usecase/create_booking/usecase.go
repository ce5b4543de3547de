package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
)

// UseCase use case создания бронирования (admission pipeline)
type UseCase struct {
	bookingRepo  BookingRepository
	rules        domain.ShopRules
	txManager    TransactionManager
	notifier     SlotNotifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules domain.ShopRules,
	txManager TransactionManager,
	notifier SlotNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rules:        rules,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет admission pipeline: проверки в строгом порядке,
// первый отказ завершает обработку без каких-либо записей.
//
// Проверки, которым нужна база (лимит дня, кулдаун, пересчет доступности,
// вставка), выполняются в одной сериализуемой транзакции с блокировкой
// строк даты FOR UPDATE: два конкурирующих запроса на пересекающиеся слоты
// не могут оба пройти пересчет и оба вставиться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, service=%s, date=%s, time=%s",
		req.Phone, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Все поля обязательны
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна быть в каталоге
	if !uc.rules.IsKnownService(req.Service) {
		uc.logger.Warn("CreateBooking: unknown service %q", req.Service)
		return nil, ErrUnknownService
	}

	now := uc.timeProvider.Now()

	// 3. Дата не должна приходиться на выходной
	if domain.IsClosedDay(req.Date, uc.rules.ClosedWeekdays) {
		uc.logger.Warn("CreateBooking: closed day %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	// 4. Дата должна попадать в окно записи [today, today+MaxDaysAhead]
	if !domain.WithinBookingWindow(req.Date, now, uc.rules.MaxDaysAhead) {
		uc.logger.Warn("CreateBooking: date %s outside booking window", req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotAllowed
	}

	var result *domain.Booking

	// 5-8. Проверки по базе и вставка атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Дневной лимит записей
		count, err := uc.bookingRepo.CountActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
		if count >= uc.rules.MaxBookingsPerDay {
			uc.logger.Warn("CreateBooking: day %s fully booked (%d/%d)",
				req.Date.Format(domain.DateFormat), count, uc.rules.MaxBookingsPerDay)
			return ErrDayFullyBooked
		}

		// 6. Кулдаун на повторные заявки с одного телефона
		since := now.Add(-time.Duration(uc.rules.CooldownMinutes) * time.Minute)
		recent, err := uc.bookingRepo.HasRecentByPhone(txCtx, req.Phone, since)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check recent bookings: %v", err)
			return fmt.Errorf("%w: failed to check recent bookings: %v", ErrInternal, err)
		}
		if recent {
			uc.logger.Warn("CreateBooking: cooldown active for phone=%s", req.Phone)
			return ErrRecentBooking
		}

		// 7. Пересчет доступности по заблокированным строкам даты.
		// Это и есть настоящая защита от двойной записи; проверки выше -
		// быстрый путь для точных сообщений об отказе.
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		slots := domain.AvailableSlots(uc.rules, req.Service, bookings)
		if !containsSlot(slots, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s taken on %s, %d alternatives",
				req.StartTime, req.Date.Format(domain.DateFormat), len(slots))
			return &SlotTakenError{Suggestions: slots}
		}

		// 8. Вставка со статусом pending
		booking := &domain.Booking{
			Name:        req.Name,
			Phone:       req.Phone,
			Service:     req.Service,
			BookingDate: domain.DateOnly(req.Date),
			StartTime:   req.StartTime,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Уведомляем подписчиков - доступность даты изменилась
	uc.notifier.SlotsUpdated(result.BookingDate)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Phone:     result.Phone,
		Service:   result.Service,
		Date:      result.BookingDate,
		StartTime: result.StartTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
