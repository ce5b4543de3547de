package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
	bookingRepo "github.com/ibbie/MT-BookingService/internal/infra/storage/booking"
	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

// Service сервис переходов статуса и операторских выборок
type Service struct {
	bookingRepo BookingRepository
	notifier    SlotNotifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier SlotNotifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Confirm переводит бронирование pending -> confirmed.
// Предикат поиска - "id совпал И статус pending": повторное подтверждение
// или подтверждение отмененной записи возвращает ErrBookingNotFound.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.bookingRepo.ConfirmPending(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found or not pending", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)

	// Занятость слота для даты изменилась
	s.notifier.SlotsUpdated(booking.BookingDate)

	return models.FromDomainBooking(booking), nil
}

// Cancel переводит бронирование в cancelled безусловно по id.
// Повторная отмена уже отмененной записи проходит успешно (идемпотентно);
// ErrBookingNotFound возвращается только для неизвестного id.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.CancelByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)

	// Отмена освобождает интервал - доступность даты изменилась
	s.notifier.SlotsUpdated(booking.BookingDate)

	return models.FromDomainBooking(booking), nil
}

// Schedule возвращает все бронирования на дату, отсортированные по времени
func (s *Service) Schedule(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("Schedule: fetching bookings for date=%s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("Schedule: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Schedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Schedule: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return &models.ScheduleResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: models.FromDomainBookingList(bookings),
	}, nil
}

// Stats возвращает агрегаты для админской панели
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	confirmed, err := s.bookingRepo.CountByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{CompletedBookings: confirmed}, nil
}

// Export возвращает бронирования за период (границы включительно),
// отсортированные по дате и времени. История хранится целиком:
// отмененные записи попадают в выгрузку со своим статусом.
func (s *Service) Export(ctx context.Context, filter domain.ExportFilter) ([]models.BookingResponse, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		s.logger.Warn("Export: dateTo before dateFrom")
		return nil, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, filter)
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Export: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
