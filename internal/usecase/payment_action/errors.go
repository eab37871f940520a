package payment_action

import "errors"

var (
	// ErrAlreadyCompleted возвращается, когда заявка уже завершена и оплата недоступна
	ErrAlreadyCompleted = errors.New("payment_action: booking is already completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payment_action: invalid input data")
)
