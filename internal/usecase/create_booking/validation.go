package create_booking

import (
	"fmt"

	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

// validateRequest проверяет, что все пять полей заявки заполнены.
// Порядок проверок фиксирован: отсутствие полей диагностируется раньше
// любых бизнес-правил.
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrFieldsRequired)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is empty", ErrFieldsRequired)
	}
	if req.Service == "" {
		return fmt.Errorf("%w: service is empty", ErrFieldsRequired)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is empty", ErrFieldsRequired)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is empty", ErrFieldsRequired)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrFieldsRequired)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrFieldsRequired)
	}

	return nil
}

// containsSlot проверяет членство слота в списке доступных
func containsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
