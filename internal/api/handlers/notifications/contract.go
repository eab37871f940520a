package notifications

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
)

type NotificationStore interface {
	Snapshot() notificationsService.Snapshot
	Refresh(ctx context.Context, initial bool) error
	SetSurfaceOpen(ctx context.Context, open bool) error
	Open(ctx context.Context, pair domain.SeenPair) (*domain.NotificationDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
