package get_booking

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

type BookingService interface {
	Get(ctx context.Context, serviceType, id string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
