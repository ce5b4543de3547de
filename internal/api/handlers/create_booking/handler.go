package create_booking

import (
	"errors"
	"net/http"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
	createBooking "github.com/ibbie/MT-BookingService/internal/usecase/create_booking"
)

const (
	msgFieldsRequired = "All fields required"
	msgInvalidService = "Invalid service"
	msgClosedDay      = "Closed on Sundays"
	msgDateNotAllowed = "Date not allowed"
	msgDayFullyBooked = "Day fully booked"
	msgRecentBooking  = "Please wait before booking again"
	msgSlotTaken      = "Time not available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var httpReq CreateBookingRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("CreateBooking: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgFieldsRequired)
		return
	}

	req, err := httpReq.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("CreateBooking: malformed date or time: %v", err)
		handlers.RespondBadRequest(w, msgFieldsRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("CreateBooking: booking %d created for %s %s", result.ID, httpReq.Date, httpReq.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var slotTaken *createBooking.SlotTakenError

	switch {
	case errors.Is(err, createBooking.ErrFieldsRequired):
		handlers.RespondBadRequest(w, msgFieldsRequired)
	case errors.Is(err, createBooking.ErrUnknownService):
		handlers.RespondBadRequest(w, msgInvalidService)
	case errors.Is(err, createBooking.ErrClosedDay):
		handlers.RespondBadRequest(w, msgClosedDay)
	case errors.Is(err, createBooking.ErrDateNotAllowed):
		handlers.RespondBadRequest(w, msgDateNotAllowed)
	case errors.Is(err, createBooking.ErrDayFullyBooked):
		handlers.RespondError(w, http.StatusConflict, msgDayFullyBooked)
	case errors.Is(err, createBooking.ErrRecentBooking):
		handlers.RespondError(w, http.StatusTooManyRequests, msgRecentBooking)
	case errors.As(err, &slotTaken):
		handlers.RespondJSON(w, http.StatusConflict, &RejectionResponse{
			Message:     msgSlotTaken,
			Suggestions: suggestionsToStrings(slotTaken.Suggestions),
		})
	default:
		h.logger.Error("CreateBooking: internal error: %v", err)
		handlers.RespondInternalError(w)
	}
}
