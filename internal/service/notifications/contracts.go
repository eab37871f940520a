package notifications

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// NotificationsAPI интерфейс клиента API уведомлений
type NotificationsAPI interface {
	ListNotifications(ctx context.Context, token string) ([]domain.Notification, error)
	GetNotificationDetails(ctx context.Context, token string, bookingID, serviceType types.RawScalar) (*domain.NotificationDetails, error)
}

// SessionStore интерфейс сессии: токен, просмотренные пары и флаг первого входа
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	LoadSeen(ctx context.Context) (domain.SeenSet, error)
	SaveSeen(ctx context.Context, seen domain.SeenSet) error
	ConsumeJustLoggedIn(ctx context.Context) (bool, error)
}

// Metrics интерфейс метрик уведомлений
type Metrics interface {
	SetNotifications(total, unread int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
