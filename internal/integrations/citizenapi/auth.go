package citizenapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// Login выполняет вход. Возвращает все поля ответа в строковом виде:
// они сохраняются в локальную сессию как есть.
func (c *Client) Login(ctx context.Context, email, password string) (map[string]string, error) {
	r, err := jsonRequest("auth.login", http.MethodPost, "/api/auth/login/", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := c.doJSON(ctx, r, &raw); err != nil {
		return nil, err
	}
	fields := flatten(raw)
	if fields["access"] == "" {
		return nil, fmt.Errorf("%w: auth.login - response has no access token", ErrInvalidResponse)
	}
	return fields, nil
}

// Register регистрирует пользователя после подтверждения OTP
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	r, err := jsonRequest("auth.register", http.MethodPost, "/api/auth/register/", "", req)
	if err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.doJSON(ctx, r, &resp); err != nil {
		return "", err
	}
	return resp.text(), nil
}

// SendOTP отправляет OTP для регистрации и возвращает secret_key
func (c *Client) SendOTP(ctx context.Context, email string) (string, error) {
	return c.requestSecret(ctx, "auth.send_otp", "/api/auth/send-otp/", email)
}

// ResendOTP повторно отправляет OTP для регистрации
func (c *Client) ResendOTP(ctx context.Context, email, secretKey string) error {
	return c.postMessage(ctx, "auth.resend_otp", "/api/auth/resend-otp/", map[string]string{
		"email":      email,
		"secret_key": secretKey,
	})
}

// VerifyOTP проверяет OTP регистрации
func (c *Client) VerifyOTP(ctx context.Context, email, secretKey, otp string) error {
	return c.verify(ctx, "auth.verify_otp", "/api/auth/verify-otp/", map[string]string{
		"email":      email,
		"secret_key": secretKey,
		"otpValue":   otp,
	})
}

// SendPasswordResetOTP отправляет OTP для сброса пароля и возвращает secret_key
func (c *Client) SendPasswordResetOTP(ctx context.Context, email string) (string, error) {
	return c.requestSecret(ctx, "auth.send_reset_otp", "/api/auth/send-password-reset-otp/", email)
}

// ResendPasswordResetOTP повторно отправляет OTP для сброса пароля
func (c *Client) ResendPasswordResetOTP(ctx context.Context, email, secretKey string) error {
	return c.postMessage(ctx, "auth.resend_reset_otp", "/api/auth/resend-password-reset-otp/", map[string]string{
		"email":      email,
		"secret_key": secretKey,
	})
}

// VerifyPasswordResetOTP проверяет OTP сброса пароля
func (c *Client) VerifyPasswordResetOTP(ctx context.Context, secretKey, otp string) error {
	return c.verify(ctx, "auth.verify_reset_otp", "/api/auth/verify-password-reset-otp/", map[string]string{
		"secret_key": secretKey,
		"otpValue":   otp,
	})
}

// ResetPassword устанавливает новый пароль после проверки OTP
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	return c.postMessage(ctx, "auth.reset_password", "/api/auth/reset-password/", map[string]string{
		"email":        email,
		"new_password": newPassword,
	})
}

// ConfirmPasswordReset устанавливает новый пароль по ссылке из письма
func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	return c.postMessage(ctx, "auth.confirm_reset", "/reset-password_api/confirm/", map[string]string{
		"uid":          uid,
		"token":        token,
		"new_password": newPassword,
	})
}

func (c *Client) requestSecret(ctx context.Context, endpoint, path, email string) (string, error) {
	r, err := jsonRequest(endpoint, http.MethodPost, path, "", map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.doJSON(ctx, r, &resp); err != nil {
		return "", err
	}
	if resp.SecretKey == "" {
		msg := resp.text()
		if msg == "" {
			msg = "Failed to send OTP"
		}
		return "", &ActionError{Message: msg}
	}
	return resp.SecretKey.String(), nil
}

func (c *Client) postMessage(ctx context.Context, endpoint, path string, payload interface{}) error {
	r, err := jsonRequest(endpoint, http.MethodPost, path, "", payload)
	if err != nil {
		return err
	}
	_, err = c.send(ctx, r)
	return err
}

// verify успешен только при точном сообщении об успешной проверке
func (c *Client) verify(ctx context.Context, endpoint, path string, payload interface{}) error {
	r, err := jsonRequest(endpoint, http.MethodPost, path, "", payload)
	if err != nil {
		return err
	}
	var resp messageResponse
	if err := c.doJSON(ctx, r, &resp); err != nil {
		return err
	}
	if resp.Message.String() != domain.OTPVerifiedMessage {
		msg := resp.text()
		if msg == "" {
			msg = "OTP verification failed"
		}
		return &ActionError{Message: msg}
	}
	return nil
}
