package login

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
