package payment_action

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	paymentAction "github.com/m04kA/SMC-CitizenClient/internal/usecase/payment_action"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgAlreadyCompleted   = "This booking is already completed"
	msgPaymentFailed      = "Payment failed. Please try again."
	msgRejectFailed       = "Failed to reject payment. Please try again."
)

type Handler struct {
	useCase PaymentUseCase
	logger  Logger
}

func NewHandler(useCase PaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Confirm POST /api/v1/notifications/payment/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/payment/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Pay(r.Context(), req.ToPair())
	if err != nil {
		h.respondError(w, "POST /notifications/payment/confirm", err, msgPaymentFailed)
		return
	}

	h.logger.Info("POST /notifications/payment/confirm - Paid: booking_id=%s", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// Reject POST /api/v1/notifications/payment/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/payment/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Reject(r.Context(), req.ToPair(), req.Reason)
	if err != nil {
		h.respondError(w, "POST /notifications/payment/reject", err, msgRejectFailed)
		return
	}

	h.logger.Info("POST /notifications/payment/reject - Rejected: booking_id=%s", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error, fallback string) {
	if errors.Is(err, paymentAction.ErrAlreadyCompleted) {
		h.logger.Warn("%s - Already completed", route)
		handlers.RespondError(w, http.StatusConflict, msgAlreadyCompleted)
		return
	}
	h.logger.Warn("%s - Failed: %v", route, err)
	handlers.RespondUpstreamError(w, err, fallback)
}
