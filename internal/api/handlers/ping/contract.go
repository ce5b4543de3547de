package ping

import "context"

// DBPinger проверяет доступность базы и возвращает её текущее время.
type DBPinger interface {
	ServerTime(ctx context.Context) (string, error)
}

type Logger interface {
	Error(format string, args ...any)
}
