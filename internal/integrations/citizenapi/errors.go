package citizenapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNetwork возвращается, когда сервер недоступен или запрос не дошёл
	ErrNetwork = errors.New("citizenapi: network error")

	// ErrUnauthorized возвращается на 401/403, токен отсутствует или отклонён
	ErrUnauthorized = errors.New("citizenapi: unauthorized")

	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("citizenapi: not found")

	// ErrValidation возвращается на 4xx с описанием ошибок по полям
	ErrValidation = errors.New("citizenapi: validation failed")

	// ErrRejected возвращается, когда сервер ответил 2xx, но не выполнил действие
	ErrRejected = errors.New("citizenapi: request rejected")

	// ErrInvalidResponse возвращается при неожиданном статусе или теле ответа
	ErrInvalidResponse = errors.New("citizenapi: invalid response")

	// ErrInternal возвращается при ошибках построения запроса
	ErrInternal = errors.New("citizenapi: internal error")
)

// ValidationError ответ сервера с сообщениями по полям.
// Unwrap возвращает ErrValidation или ErrUnauthorized в зависимости от статуса.
type ValidationError struct {
	Status int
	Fields map[string][]string
	Detail string
	kind   error
}

func (e *ValidationError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return fmt.Sprintf("%v: status %d", e.Unwrap(), e.Status)
	}
	return fmt.Sprintf("%v: %s", e.Unwrap(), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	if e.kind == nil {
		return ErrValidation
	}
	return e.kind
}

// Messages сообщения в виде "поле: текст", отсортированные по имени поля, затем detail
func (e *ValidationError) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var msgs []string
	for _, field := range fields {
		for _, msg := range e.Fields[field] {
			msgs = append(msgs, field+": "+msg)
		}
	}
	if e.Detail != "" {
		msgs = append(msgs, e.Detail)
	}
	return msgs
}

// HasField есть ли сообщение для поля
func (e *ValidationError) HasField(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// ActionError сервер ответил успешным статусом, но отказал в действии
type ActionError struct {
	Message string
}

func (e *ActionError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return fmt.Sprintf("%v: %s", ErrRejected, e.Message)
}

func (e *ActionError) Unwrap() error {
	return ErrRejected
}

// UserMessages сообщения для показа пользователю по любой ошибке клиента
func UserMessages(err error, fallback string) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		if msgs := vErr.Messages(); len(msgs) > 0 {
			return msgs
		}
	}

	var aErr *ActionError
	if errors.As(err, &aErr) && aErr.Message != "" {
		return []string{aErr.Message}
	}

	if errors.Is(err, ErrNetwork) {
		return []string{"Network error. Please try again."}
	}
	return []string{fallback}
}
