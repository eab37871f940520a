package bookings

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// BookingsAPI интерфейс клиента API заявок
type BookingsAPI interface {
	ListBookings(ctx context.Context, token string, tab domain.BookingTab, typeFilter string) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, token, serviceType, id string) (*domain.Booking, error)
	ListUserComplaints(ctx context.Context, token string) ([]*domain.Complaint, error)
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
