package submit_request

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// SubmissionAPI интерфейс клиента для отправки заявок
type SubmissionAPI interface {
	Submit(ctx context.Context, token string, kind citizenapi.SubmissionKind, form *citizenapi.Form) (map[string]string, error)
}

// CatalogAPI интерфейс справочников категорий
type CatalogAPI interface {
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
