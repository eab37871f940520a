package account

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	accountService "github.com/m04kA/SMC-CitizenClient/internal/service/account"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgLoadFailed         = "Failed to load account details"
	msgUpdateFailed       = "Failed to update account details"
	msgUpdated            = "Profile updated successfully"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/account
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /account - Failed to get account: %v", err)
		handlers.RespondUpstreamError(w, err, msgLoadFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomain(profile))
}

// Update PUT /api/v1/account
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProfileDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /account - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), req.ToDomain()); err != nil {
		if errors.Is(err, accountService.ErrInternal) {
			h.logger.Error("PUT /account - Failed to save session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("PUT /account - Failed to update account: %v", err)
		handlers.RespondUpstreamError(w, err, msgUpdateFailed)
		return
	}

	h.logger.Info("PUT /account - Account updated")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgUpdated})
}
