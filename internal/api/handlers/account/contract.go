package account

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

type AccountService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
