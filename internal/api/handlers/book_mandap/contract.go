package book_mandap

import (
	"context"

	bookMandap "github.com/m04kA/SMC-CitizenClient/internal/usecase/book_mandap"
)

type BookMandapUseCase interface {
	Execute(ctx context.Context, req *bookMandap.Request) (*bookMandap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
