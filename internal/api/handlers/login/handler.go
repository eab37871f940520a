package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgLoginFailed        = "Login failed"
	msgInvalidCredentials = "Invalid email or password"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// отказ в логине не должен вести на экран входа, пользователь уже на нём
		if errors.Is(err, citizenapi.ErrUnauthorized) {
			h.logger.Warn("POST /auth/login - Credentials rejected")
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{
				Error:  msgInvalidCredentials,
				Toasts: citizenapi.UserMessages(err, msgInvalidCredentials),
			})
			return
		}
		h.logger.Warn("POST /auth/login - Login failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgLoginFailed)
		return
	}

	h.logger.Info("POST /auth/login - Signed in: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
