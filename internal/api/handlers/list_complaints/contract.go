package list_complaints

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

type BookingService interface {
	ListUserComplaints(ctx context.Context) (*models.ComplaintsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
