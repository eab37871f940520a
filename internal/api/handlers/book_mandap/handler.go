package book_mandap

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	bookMandap "github.com/m04kA/SMC-CitizenClient/internal/usecase/book_mandap"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgBookingFailed      = "Booking failed"
	msgBooked             = "Your booking has been submitted successfully."
)

type Handler struct {
	useCase BookMandapUseCase
	logger  Logger
}

func NewHandler(useCase BookMandapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/mandaps/{mandapId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mandapID := mux.Vars(r)["mandapId"]

	var req BookMandapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /mandaps/{mandapId}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(mandapID))
	if err != nil {
		var rejected *bookMandap.RejectedError
		if errors.As(err, &rejected) {
			h.logger.Warn("POST /mandaps/{mandapId}/bookings - Rejected: mandap_id=%s, error=%v", mandapID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:  msgBookingFailed,
				Toasts: rejected.Messages,
			})
			return
		}
		h.logger.Warn("POST /mandaps/{mandapId}/bookings - Failed: mandap_id=%s, error=%v", mandapID, err)
		handlers.RespondUpstreamError(w, err, msgBookingFailed)
		return
	}

	h.logger.Info("POST /mandaps/{mandapId}/bookings - Booked: mandap_id=%s", mandapID)
	handlers.RespondJSON(w, http.StatusCreated, BookMandapResponse{Message: msgBooked, Booking: result.Result})
}
