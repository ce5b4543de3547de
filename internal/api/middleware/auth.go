package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ibbie/MT-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "Unauthorized"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, args ...interface{})
}

// Auth проверяет админский токен в заголовке X-Admin-Token.
// Отсутствующий и неверный токен дают одинаковый 401, чтобы не
// подсказывать перебором, существует ли заголовок.
func Auth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("Auth: rejected admin request %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
