package account

import "errors"

var (
	// ErrSessionExpired возвращается, когда сервер не принял токен доступа
	ErrSessionExpired = errors.New("account: session expired")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("account: invalid input data")

	// ErrInternal возвращается при ошибках локального хранилища
	ErrInternal = errors.New("account: internal error")
)
