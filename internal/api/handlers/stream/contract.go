package stream

import (
	"github.com/google/uuid"

	"github.com/ibbie/MT-BookingService/internal/events"
)

// SlotStream источник событий об изменении занятости слотов
type SlotStream interface {
	Subscribe() (uuid.UUID, <-chan events.Event)
	Unsubscribe(id uuid.UUID)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
