package create_booking

import (
	"errors"

	"github.com/ibbie/MT-BookingService/pkg/types"
)

var (
	// ErrFieldsRequired возвращается, когда не заполнено обязательное поле
	ErrFieldsRequired = errors.New("create_booking: all fields required")

	// ErrUnknownService возвращается, когда услуги нет в каталоге
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrClosedDay возвращается, когда дата приходится на выходной день
	ErrClosedDay = errors.New("create_booking: shop is closed on this date")

	// ErrDateNotAllowed возвращается, когда дата вне окна записи
	ErrDateNotAllowed = errors.New("create_booking: date is outside the booking window")

	// ErrDayFullyBooked возвращается при достижении дневного лимита записей
	ErrDayFullyBooked = errors.New("create_booking: day fully booked")

	// ErrRecentBooking возвращается, когда для телефона еще действует кулдаун
	ErrRecentBooking = errors.New("create_booking: recent booking from this phone")

	// ErrSlotTaken возвращается, когда запрошенный слот занят.
	// Конкретный отказ приходит как *SlotTakenError со свежим списком
	// свободных слотов.
	ErrSlotTaken = errors.New("create_booking: time slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError отказ по конфликту слота. Несет свежерассчитанный список
// доступных слотов, чтобы вызывающая сторона могла предложить альтернативы
// без второго запроса.
type SlotTakenError struct {
	Suggestions []types.TimeString
}

// Error implements the error interface
func (e *SlotTakenError) Error() string {
	return ErrSlotTaken.Error()
}

// Unwrap делает errors.Is(err, ErrSlotTaken) истинным
func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
