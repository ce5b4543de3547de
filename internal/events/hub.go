package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ibbie/MT-BookingService/internal/domain"
)

// Тип события об изменении доступности слотов
const TypeSlotsUpdated = "slots_updated"

// Размер буфера канала подписчика. При переполнении событие для этого
// подписчика отбрасывается: клиент перечитает доступность при следующем
// событии или при ручном обновлении.
const subscriberBuffer = 8

// Event событие, рассылаемое подписчикам realtime-канала.
// Подписчики перечитывают доступность по дате, содержимое события
// не несет ничего, кроме даты.
type Event struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Hub реестр живых подписчиков с broadcast-рассылкой.
// Владеет каналами подписчиков; бизнес-логика видит его только как
// SlotNotifier и не зависит от транспорта.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan Event
	closed      bool
	logger      Logger
}

// NewHub создает пустой реестр подписчиков
func NewHub(logger Logger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]chan Event),
		logger:      logger,
	}
}

// Subscribe регистрирует нового подписчика и возвращает его идентификатор и канал
func (h *Hub) Subscribe() (uuid.UUID, <-chan Event) {
	id := uuid.New()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return id, ch
	}

	h.subscribers[id] = ch
	h.logger.Info("Hub: subscriber %s connected, total=%d", id, len(h.subscribers))
	return id, ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(ch)
	h.logger.Info("Hub: subscriber %s disconnected, total=%d", id, len(h.subscribers))
}

// SlotsUpdated рассылает событие об изменении доступности на дату.
// Рассылка best-effort: медленный подписчик событие теряет.
func (h *Hub) SlotsUpdated(date time.Time) {
	event := Event{
		Type: TypeSlotsUpdated,
		Date: date.Format(domain.DateFormat),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn("Hub: subscriber %s is slow, dropping event for date=%s", id, event.Date)
		}
	}
}

// Close закрывает все каналы подписчиков. Вызывается при остановке сервера.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}
