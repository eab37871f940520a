package catalog

import "errors"

var (
	// ErrMandapNotFound возвращается, когда зал не найден
	ErrMandapNotFound = errors.New("catalog: mandap not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")
)
