package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "Invalid tab or type filter"
	msgLoadFailed    = "Failed to load bookings"
)

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

// Handle GET /api/v1/bookings?tab=active|past&type=waste&search=text
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		Tab:    domain.BookingTab(query.Get("tab")),
		Type:   query.Get("type"),
		Search: query.Get("search"),
	}
	if req.Tab == "" {
		req.Tab = domain.TabActive
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: tab=%s, error=%v", req.Tab, err)
		handlers.RespondUpstreamError(w, err, msgLoadFailed)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: tab=%s, type=%s, count=%d", req.Tab, req.Type, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(result))
}
