package notifications

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidCategory    = "Unknown notification category"
	msgLoadFailed         = "Failed to load notifications"
	msgNotFound           = "Notification not found"
	msgNotInteractive     = "This notification is already closed"
	msgDetailsFailed      = "Failed to load details"
)

type Handler struct {
	store  NotificationStore
	logger Logger
}

func NewHandler(store NotificationStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// List GET /api/v1/notifications?category=payment
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category, ok := parseCategory(r.URL.Query().Get("category"))
	if !ok {
		h.logger.Warn("GET /notifications - Invalid category: %q", r.URL.Query().Get("category"))
		handlers.RespondBadRequest(w, msgInvalidCategory)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.store.Snapshot(), category))
}

// Refresh POST /api/v1/notifications/refresh
// При ошибке список остаётся прежним, ответ содержит ошибку.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Refresh(r.Context(), true); err != nil {
		h.logger.Warn("POST /notifications/refresh - Refresh failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgLoadFailed)
		return
	}

	snapshot := h.store.Snapshot()
	h.logger.Info("POST /notifications/refresh - Refreshed: total=%d, unread=%d", len(snapshot.Items), snapshot.Unread)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot, domain.CategoryAll))
}

// Surface PUT /api/v1/notifications/surface
// Открытие панели запускает обновление списка.
func (h *Handler) Surface(w http.ResponseWriter, r *http.Request) {
	var req SurfaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /notifications/surface - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.store.SetSurfaceOpen(r.Context(), req.Open); err != nil {
		// панель открыта, список просто не обновился
		h.logger.Warn("PUT /notifications/surface - Refresh on open failed: %v", err)
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.store.Snapshot(), domain.CategoryAll))
}

// Open POST /api/v1/notifications/open
// Отмечает уведомление просмотренным и возвращает детали заявки.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/open - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	details, err := h.store.Open(r.Context(), req.ToPair())
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("POST /notifications/open - Not found: booking_id=%s, service_type=%s", req.BookingID, req.ServiceType)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notificationsService.ErrNotInteractive):
			h.logger.Warn("POST /notifications/open - Not interactive: booking_id=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotInteractive)

		default:
			h.logger.Error("POST /notifications/open - Failed: booking_id=%s, error=%v", req.BookingID, err)
			handlers.RespondUpstreamError(w, err, msgDetailsFailed)
		}
		return
	}

	h.logger.Info("POST /notifications/open - Opened: booking_id=%s, service_type=%s", req.BookingID, req.ServiceType)
	handlers.RespondJSON(w, http.StatusOK, FromDetails(details))
}

func parseCategory(value string) (domain.NotificationCategory, bool) {
	if value == "" {
		return domain.CategoryAll, true
	}
	for _, c := range domain.NotificationCategories {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}
