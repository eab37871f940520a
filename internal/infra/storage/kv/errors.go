package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kv.repository: key not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("kv.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kv.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv.repository: failed to scan row")

	// ErrMigration возвращается при ошибке создания схемы
	ErrMigration = errors.New("kv.repository: migration failed")
)
