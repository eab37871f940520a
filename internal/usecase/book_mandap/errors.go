package book_mandap

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_mandap: invalid input data")
)

// RejectedError сервер отклонил бронирование. Messages готовы для показа пользователю.
type RejectedError struct {
	Messages []string
	Err      error
}

func (e *RejectedError) Error() string {
	return "book_mandap: booking rejected: " + strings.Join(e.Messages, "; ")
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
