package ping

import (
	"net/http"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
)

// PingResponse HTTP response model
type PingResponse struct {
	Success    bool   `json:"success"`
	ServerTime string `json:"serverTime"`
}

type Handler struct {
	db     DBPinger
	logger Logger
}

func NewHandler(db DBPinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /api/admin/ping
// До хендлера доходят только аутентифицированные запросы,
// поэтому успешный ответ заодно подтверждает валидность токена.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serverTime, err := h.db.ServerTime(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/ping - Database unreachable: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &PingResponse{
		Success:    true,
		ServerTime: serverTime,
	})
}
