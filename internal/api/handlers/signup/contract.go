package signup

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
)

type AuthService interface {
	SendSignupOTP(ctx context.Context, email string) (string, error)
	ResendSignupOTP(ctx context.Context, email, secretKey string) error
	VerifySignupOTP(ctx context.Context, email, secretKey, otp string) error
	Register(ctx context.Context, req *models.RegisterRequest) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
