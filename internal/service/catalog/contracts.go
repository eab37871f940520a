package catalog

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// CatalogAPI интерфейс справочников внешнего API
type CatalogAPI interface {
	ListMandaps(ctx context.Context, token string) ([]*domain.Mandap, error)
	GetMandap(ctx context.Context, token, id string) (*domain.Mandap, error)
	ListComplaintCategories(ctx context.Context, token string) ([]*domain.Category, error)
	ListPollutionCategories(ctx context.Context, token string) ([]*domain.Category, error)
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
