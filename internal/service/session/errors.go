package session

import "errors"

var (
	// ErrNoSession возвращается, когда в хранилище нет токена доступа
	ErrNoSession = errors.New("session: not logged in")

	// ErrInvalidToken возвращается, когда токен доступа не является JWT
	ErrInvalidToken = errors.New("session: invalid access token")

	// ErrUnsupportedSchema возвращается, когда запись сохранена более новой версией клиента
	ErrUnsupportedSchema = errors.New("session: unsupported schema version")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("session: internal error")
)
