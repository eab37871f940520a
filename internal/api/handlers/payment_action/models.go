package payment_action

import (
	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers/notifications"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	paymentAction "github.com/m04kA/SMC-CitizenClient/internal/usecase/payment_action"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// PaymentRequest HTTP request model
type PaymentRequest struct {
	BookingID   types.RawScalar `json:"booking_id"`
	ServiceType types.RawScalar `json:"service_type"`
	Reason      string          `json:"reason,omitempty"`
}

// ToPair пара заявки для use case
func (r *PaymentRequest) ToPair() domain.SeenPair {
	return domain.SeenPair{BookingID: r.BookingID, ServiceType: r.ServiceType}
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	Message string                         `json:"message"`
	Details *notifications.DetailsResponse `json:"details,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *paymentAction.Response) *PaymentResponse {
	return &PaymentResponse{
		Message: resp.Message,
		Details: notifications.FromDetails(resp.Details),
	}
}
