package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

type CatalogService interface {
	ListMandaps(ctx context.Context) ([]*domain.Mandap, error)
	GetMandap(ctx context.Context, id string) (*domain.Mandap, error)
	ComplaintCategories(ctx context.Context) ([]*domain.Category, error)
	PollutionCategories(ctx context.Context) ([]*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
