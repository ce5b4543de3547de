package export_csv

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/internal/service/bookings"
	"github.com/ibbie/MT-BookingService/pkg/ptr"
)

const (
	msgInvalidDate  = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "dateTo must not be before dateFrom"

	attachmentName = "bookings.csv"
)

var csvHeader = []string{"id", "name", "phone", "service", "date", "time", "status", "createdAt"}

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

// Handle GET /api/admin/export/csv
// Query params: dateFrom, dateTo (optional, YYYY-MM-DD, границы включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /admin/export/csv - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rows, err := h.service.Export(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /admin/export/csv - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/export/csv - Exporting %d bookings", len(rows))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.logger.Error("GET /admin/export/csv - Failed to write header: %v", err)
		return
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Name,
			row.Phone,
			row.Service,
			row.Date,
			row.Time,
			row.Status,
			row.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			h.logger.Error("GET /admin/export/csv - Failed to write record: %v", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("GET /admin/export/csv - Flush failed: %v", err)
	}
}

func parseFilter(r *http.Request) (domain.ExportFilter, error) {
	var filter domain.ExportFilter

	if from := r.URL.Query().Get("dateFrom"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return domain.ExportFilter{}, err
		}
		filter.DateFrom = ptr.Ptr(date)
	}
	if to := r.URL.Query().Get("dateTo"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return domain.ExportFilter{}, err
		}
		filter.DateTo = ptr.Ptr(date)
	}

	return filter, nil
}
