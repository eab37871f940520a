package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

// TokenProvider интерфейс источника токена доступа
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionGuard пропускает запрос только при наличии токена доступа в сессии.
// Без токена отвечает 401 {"redirect":"login"}.
func SessionGuard(tokens TokenProvider, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := tokens.Token(r.Context()); err != nil {
				if errors.Is(err, session.ErrNoSession) {
					logger.Warn("%s %s - no session", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w)
					return
				}
				logger.Error("%s %s - failed to read session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
