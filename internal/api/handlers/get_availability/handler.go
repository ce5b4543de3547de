package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
	"github.com/ibbie/MT-BookingService/internal/domain"
	getAvailableSlots "github.com/ibbie/MT-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "Date and service required"
	msgInvalidDate   = "Invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD), service (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	service := r.URL.Query().Get("service")

	// Жесткий 400 только за отсутствие параметров; все "мягкие" случаи
	// (выходной, дата вне окна, неизвестная услуга) дают пустой список
	if dateStr == "" || service == "" {
		h.logger.Warn("GET /availability - Missing date or service")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:    date,
		Service: service,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, service=%s, error=%v",
				dateStr, service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots for date=%s, service=%s",
		len(result.Slots), dateStr, service)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
