package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

const (
	msgInternalError   = "Something went wrong. Please try again."
	msgSessionExpired  = "Session expired. Please log in again."
	msgNetworkError    = "Network error. Please try again."
	msgInvalidResponse = "Unexpected response from server. Please try again."
	msgNotFound        = "Not found"

	// RedirectLogin значение redirect, по которому UI открывает экран входа
	RedirectLogin = "login"
)

// ErrorResponse тело ответа с ошибкой.
// Toasts готовы для показа по одному, Fields привязывают сообщения к полям формы.
type ErrorResponse struct {
	Error    string              `json:"error"`
	Toasts   []string            `json:"toasts,omitempty"`
	Fields   map[string][]string `json:"fields,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// MessageResponse тело успешного ответа без данных
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с одним сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Toasts: []string{message}})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondUnauthorized 401 с переходом на экран входа
func RespondUnauthorized(w http.ResponseWriter) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error:    msgSessionExpired,
		Redirect: RedirectLogin,
	})
}

// RespondValidation 400 с сообщениями по полям формы
func RespondValidation(w http.ResponseWriter, message string, errs domain.ValidationErrors) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  message,
		Toasts: errs.Messages(),
		Fields: errs.Fields(),
	})
}

// RespondUpstreamError переводит ошибку внешнего API в ответ.
// Локальные ошибки формы и ответы сервера с полями отдаются как 400 с toasts.
// Отсутствие сессии и отказ в токене ведут на экран входа.
func RespondUpstreamError(w http.ResponseWriter, err error, fallback string) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		RespondValidation(w, fallback, verrs)
		return
	}

	switch {
	case errors.Is(err, session.ErrNoSession):
		RespondUnauthorized(w)
		return
	case errors.Is(err, citizenapi.ErrUnauthorized):
		RespondJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:    msgSessionExpired,
			Toasts:   citizenapi.UserMessages(err, msgSessionExpired),
			Redirect: RedirectLogin,
		})
		return
	}

	var vErr *citizenapi.ValidationError
	if errors.As(err, &vErr) {
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  fallback,
			Toasts: citizenapi.UserMessages(err, fallback),
			Fields: vErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, citizenapi.ErrRejected):
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  fallback,
			Toasts: citizenapi.UserMessages(err, fallback),
		})
	case errors.Is(err, citizenapi.ErrNotFound):
		RespondNotFound(w, msgNotFound)
	case errors.Is(err, citizenapi.ErrNetwork):
		RespondError(w, http.StatusBadGateway, msgNetworkError)
	case errors.Is(err, citizenapi.ErrInvalidResponse):
		RespondError(w, http.StatusBadGateway, msgInvalidResponse)
	default:
		RespondInternalError(w)
	}
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
