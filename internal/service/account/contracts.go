package account

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// AccountAPI интерфейс клиента API профиля
type AccountAPI interface {
	GetAccountDetails(ctx context.Context, token string) (*domain.Profile, error)
	UpdateAccountDetails(ctx context.Context, token string, profile *domain.Profile) error
}

// SessionStore интерфейс сессии
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session) error
	DropAccess(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
