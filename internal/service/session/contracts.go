package session

import "context"

// KVStore интерфейс локального key-value хранилища
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}

// TxManager выполняет функцию в транзакции хранилища
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
