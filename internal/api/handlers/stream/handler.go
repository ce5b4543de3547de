package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Интервал keep-alive комментариев, чтобы прокси не закрывали соединение
const heartbeatInterval = 25 * time.Second

type Handler struct {
	stream SlotStream
	logger Logger
}

func NewHandler(stream SlotStream, logger Logger) *Handler {
	return &Handler{
		stream: stream,
		logger: logger,
	}
}

// Handle GET /api/stream
// Держит SSE соединение открытым и транслирует события slots_updated.
// Клиент не шлет ничего после подключения; соединение живет до его
// разрыва или остановки сервера.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /stream - Response writer does not support flushing")
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	id, ch := h.stream.Subscribe()
	defer h.stream.Unsubscribe(id)

	h.logger.Info("GET /stream - Subscriber %s connected", id)

	// Сразу подтверждаем подключение, иначе клиент видит его только
	// после первого события
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("GET /stream - Subscriber %s disconnected", id)
			return
		case event, ok := <-ch:
			if !ok {
				// Hub закрыт при остановке сервера
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("GET /stream - Failed to marshal event: %v", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
