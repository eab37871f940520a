package book_mandap

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// MandapAPI интерфейс клиента бронирования залов
type MandapAPI interface {
	BookMandap(ctx context.Context, token string, req citizenapi.BookMandapRequest) (map[string]string, error)
}

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
