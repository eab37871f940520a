package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")
)
