package auth

import (
	"context"

	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// AuthAPI интерфейс клиента API авторизации
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (map[string]string, error)
	Register(ctx context.Context, req citizenapi.RegisterRequest) (string, error)
	SendOTP(ctx context.Context, email string) (string, error)
	ResendOTP(ctx context.Context, email, secretKey string) error
	VerifyOTP(ctx context.Context, email, secretKey, otp string) error
	SendPasswordResetOTP(ctx context.Context, email string) (string, error)
	ResendPasswordResetOTP(ctx context.Context, email, secretKey string) error
	VerifyPasswordResetOTP(ctx context.Context, secretKey, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error
}

// SessionStore интерфейс локальной сессии
type SessionStore interface {
	SaveLogin(ctx context.Context, fields map[string]string) error
	MarkJustLoggedIn(ctx context.Context) error
	Clear(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// NotificationsResetter сбрасывает хранилище уведомлений при выходе
type NotificationsResetter interface {
	Reset()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
