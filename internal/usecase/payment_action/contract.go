package payment_action

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// PaymentAPI интерфейс клиента для операций оплаты
type PaymentAPI interface {
	GetNotificationDetails(ctx context.Context, token string, bookingID, serviceType types.RawScalar) (*domain.NotificationDetails, error)
	ConfirmPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar) error
	RejectPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar, reason string) error
}

// NotificationsRefresher интерфейс хранилища уведомлений
type NotificationsRefresher interface {
	Refresh(ctx context.Context, initial bool) error
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
