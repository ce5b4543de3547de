package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
	"github.com/ibbie/MT-BookingService/internal/service/bookings"
)

const (
	msgInvalidID = "Invalid booking id"
	msgNotFound  = "Booking not found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/bookings/{bookingId}/cancel
// Отмена идемпотентна: повторный вызов для уже отмененной записи
// возвращает 200 с ее текущим состоянием.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["bookingId"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/cancel - Invalid id %q: %v", idStr, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PATCH /admin/bookings/cancel - Failed for id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CancelBookingResponse{
		Success: true,
		Booking: booking,
	})
}
