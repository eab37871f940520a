package logout

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
)

const (
	msgInvalidFull = "Parameter full must be true or false"
	msgLoggedOut   = "Logged out"
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

// Handle POST /api/v1/auth/logout?full=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	full := false
	if v := r.URL.Query().Get("full"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("POST /auth/logout - Invalid full parameter: %q", v)
			handlers.RespondBadRequest(w, msgInvalidFull)
			return
		}
		full = parsed
	}

	if err := h.service.Logout(r.Context(), full); err != nil {
		h.logger.Error("POST /auth/logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Logged out, full=%t", full)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgLoggedOut})
}
