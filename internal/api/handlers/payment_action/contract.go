package payment_action

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	paymentAction "github.com/m04kA/SMC-CitizenClient/internal/usecase/payment_action"
)

type PaymentUseCase interface {
	Pay(ctx context.Context, pair domain.SeenPair) (*paymentAction.Response, error)
	Reject(ctx context.Context, pair domain.SeenPair, reason string) (*paymentAction.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
