package get_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/account"
)

type Handler struct {
	auth          AuthChecker
	notifications LoginStateChecker
	logger        Logger
}

func NewHandler(auth AuthChecker, notifications LoginStateChecker, logger Logger) *Handler {
	return &Handler{
		auth:          auth,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle GET /api/v1/session
// Проверяет токен на сервере. Сразу после входа дополнительно открывает панель уведомлений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.CheckAuth(r.Context())
	if err != nil {
		if errors.Is(err, account.ErrSessionExpired) {
			h.logger.Warn("GET /session - Session expired: %v", err)
			handlers.RespondUnauthorized(w)
			return
		}
		h.logger.Error("GET /session - Failed to check session: %v", err)
		handlers.RespondUpstreamError(w, err, "Failed to check session")
		return
	}

	opened, err := h.notifications.CheckLoginState(r.Context())
	if err != nil {
		// панель уведомлений не обязательна для ответа
		h.logger.Warn("GET /session - Failed to check login state: %v", err)
	}

	h.logger.Info("GET /session - Session valid: user_id=%s", sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(sess, opened))
}
