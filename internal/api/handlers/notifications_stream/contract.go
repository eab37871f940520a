package notifications_stream

import (
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
)

type SnapshotSource interface {
	Snapshot() notificationsService.Snapshot
	Subscribe() (<-chan notificationsService.Snapshot, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
