package notifications

import (
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// Snapshot состояние хранилища на момент чтения
type Snapshot struct {
	Items       []domain.Notification
	Unread      int
	Loading     bool
	SurfaceOpen bool
	LastError   string
	UpdatedAt   time.Time
}
