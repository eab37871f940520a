package payment_action

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	paymentAction "github.com/m04kA/SMC-CitizenClient/internal/usecase/payment_action"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

type mockPayment struct {
	mock.Mock
}

func (m *mockPayment) Pay(ctx context.Context, pair domain.SeenPair) (*paymentAction.Response, error) {
	args := m.Called(ctx, pair)
	res, _ := args.Get(0).(*paymentAction.Response)
	return res, args.Error(1)
}

func (m *mockPayment) Reject(ctx context.Context, pair domain.SeenPair, reason string) (*paymentAction.Response, error) {
	args := m.Called(ctx, pair, reason)
	res, _ := args.Get(0).(*paymentAction.Response)
	return res, args.Error(1)
}

var testPair = domain.SeenPair{BookingID: types.ScalarFromInt(42), ServiceType: types.ScalarFromString("cesspool")}

func TestHandler_Confirm(t *testing.T) {
	uc := &mockPayment{}
	uc.On("Pay", mock.Anything, testPair).Return(&paymentAction.Response{
		Message: paymentAction.MsgPaid,
		Details: &domain.NotificationDetails{BookingID: testPair.BookingID, Status: "completed"},
	}, nil)
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	body := `{"booking_id":42,"service_type":"cesspool"}`
	h.Confirm(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/payment/confirm", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Payment successful!", res.Message)
	require.NotNil(t, res.Details)
	assert.False(t, res.Details.CanPay)
}

func TestHandler_ConfirmAlreadyCompleted(t *testing.T) {
	uc := &mockPayment{}
	uc.On("Pay", mock.Anything, testPair).Return(nil, paymentAction.ErrAlreadyCompleted)
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Confirm(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"booking_id":42,"service_type":"cesspool"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_RejectRequiresReason(t *testing.T) {
	uc := &mockPayment{}
	verrs := domain.ValidationErrors{{Field: "reason", Message: "Please enter a reason for rejection."}}
	uc.On("Reject", mock.Anything, testPair, "").Return(nil, fmt.Errorf("%w: %w", paymentAction.ErrInvalidInput, verrs))
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Reject(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"booking_id":42,"service_type":"cesspool"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"Please enter a reason for rejection."}, res.Toasts)
}

func TestHandler_RejectUpstreamRefused(t *testing.T) {
	uc := &mockPayment{}
	uc.On("Reject", mock.Anything, testPair, "too expensive").
		Return(nil, &citizenapi.ActionError{Message: "Payment already rejected"})
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	body := `{"booking_id":42,"service_type":"cesspool","reason":"too expensive"}`
	h.Reject(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"Payment already rejected"}, res.Toasts)
}
