package password_reset

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
)

type AuthService interface {
	SendResetOTP(ctx context.Context, email string) (string, error)
	ResendResetOTP(ctx context.Context, email, secretKey string) error
	VerifyResetOTP(ctx context.Context, email, secretKey, otp string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	ConfirmReset(ctx context.Context, req *models.ConfirmResetRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
