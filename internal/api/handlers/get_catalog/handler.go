package get_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/catalog"
)

const (
	msgMandapNotFound   = "Mandap not found"
	msgInvalidMandapID  = "Invalid mandap ID"
	msgMandapsFailed    = "Failed to load mandaps"
	msgCategoriesFailed = "Failed to load categories"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Mandaps GET /api/v1/catalog/mandaps
func (h *Handler) Mandaps(w http.ResponseWriter, r *http.Request) {
	mandaps, err := h.service.ListMandaps(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/mandaps - Failed to list mandaps: %v", err)
		handlers.RespondUpstreamError(w, err, msgMandapsFailed)
		return
	}

	res := make([]*MandapResponse, 0, len(mandaps))
	for _, m := range mandaps {
		res = append(res, FromMandap(m))
	}
	handlers.RespondJSON(w, http.StatusOK, res)
}

// Mandap GET /api/v1/catalog/mandaps/{mandapId}
func (h *Handler) Mandap(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["mandapId"]

	mandap, err := h.service.GetMandap(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMandapID)
		case errors.Is(err, catalog.ErrMandapNotFound):
			h.logger.Warn("GET /catalog/mandaps/{mandapId} - Mandap not found: id=%s", id)
			handlers.RespondNotFound(w, msgMandapNotFound)
		default:
			h.logger.Error("GET /catalog/mandaps/{mandapId} - Failed to get mandap: id=%s, error=%v", id, err)
			handlers.RespondUpstreamError(w, err, msgMandapsFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromMandap(mandap))
}

// ComplaintCategories GET /api/v1/catalog/complaint-categories
func (h *Handler) ComplaintCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ComplaintCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/complaint-categories - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgCategoriesFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromCategories(categories))
}

// PollutionCategories GET /api/v1/catalog/pollution-categories
func (h *Handler) PollutionCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.PollutionCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/pollution-categories - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgCategoriesFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromCategories(categories))
}
