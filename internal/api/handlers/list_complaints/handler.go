package list_complaints

import (
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
)

const msgLoadFailed = "Failed to load complaints"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/complaints
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUserComplaints(r.Context())
	if err != nil {
		h.logger.Error("GET /complaints - Failed to list complaints: %v", err)
		handlers.RespondUpstreamError(w, err, msgLoadFailed)
		return
	}

	h.logger.Info("GET /complaints - Complaints retrieved: pending=%d, resolved=%d",
		len(result.Pending), len(result.Resolved))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
