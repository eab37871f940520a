package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

const (
	msgInvalidBooking = "Invalid booking reference"
	msgNotFound       = "Booking not found"
	msgLoadFailed     = "Failed to load booking details"
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

// Handle GET /api/v1/bookings/{serviceType}/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceType := vars["serviceType"]
	id := vars["id"]

	booking, err := h.service.Get(r.Context(), serviceType, id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{serviceType}/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{serviceType}/{id} - Booking not found: service_type=%s, id=%s", serviceType, id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{serviceType}/{id} - Failed to get booking: service_type=%s, id=%s, error=%v",
				serviceType, id, err)
			handlers.RespondUpstreamError(w, err, msgLoadFailed)
		}
		return
	}

	h.logger.Info("GET /bookings/{serviceType}/{id} - Booking retrieved: service_type=%s, id=%s, kind=%s",
		serviceType, id, booking.Kind)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(booking))
}
