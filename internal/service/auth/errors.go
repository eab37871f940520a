package auth

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrOTPNotVerified возвращается, когда шаг требует подтверждённого OTP
	ErrOTPNotVerified = errors.New("auth: otp not verified")

	// ErrInternal возвращается при ошибках локального хранилища
	ErrInternal = errors.New("auth: internal error")
)
