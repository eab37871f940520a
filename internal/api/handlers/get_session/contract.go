package get_session

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// AuthChecker проверяет токен на сервере и возвращает сессию
type AuthChecker interface {
	CheckAuth(ctx context.Context) (*domain.Session, error)
}

// LoginStateChecker открывает панель уведомлений после свежего входа
type LoginStateChecker interface {
	CheckLoginState(ctx context.Context) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
