package submit_request

import "errors"

var (
	// ErrUnknownKind возвращается для неизвестного вида заявки
	ErrUnknownKind = errors.New("submit_request: unknown request kind")

	// ErrInvalidInput возвращается при ошибках заполнения формы
	ErrInvalidInput = errors.New("submit_request: invalid input data")

	// ErrInternal возвращается, когда не удалось загрузить справочник категорий
	ErrInternal = errors.New("submit_request: internal error")
)
