package payment_action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetNotificationDetails(ctx context.Context, token string, bookingID, serviceType types.RawScalar) (*domain.NotificationDetails, error) {
	args := m.Called(ctx, token, bookingID, serviceType)
	res, _ := args.Get(0).(*domain.NotificationDetails)
	return res, args.Error(1)
}

func (m *mockAPI) ConfirmPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar) error {
	return m.Called(ctx, token, bookingID, serviceType).Error(0)
}

func (m *mockAPI) RejectPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar, reason string) error {
	return m.Called(ctx, token, bookingID, serviceType, reason).Error(0)
}

type fakeRefresher struct {
	calls   []bool
	failure error
}

func (f *fakeRefresher) Refresh(ctx context.Context, initial bool) error {
	f.calls = append(f.calls, initial)
	return f.failure
}

type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", session.ErrNoSession
	}
	return string(t), nil
}

var (
	bookingID   = types.ScalarFromInt(12)
	serviceType = types.ScalarFromString("waste")
	pair        = domain.SeenPair{BookingID: bookingID, ServiceType: serviceType}
)

func newTestUseCase(token string) (*UseCase, *mockAPI, *fakeRefresher) {
	api := &mockAPI{}
	refresher := &fakeRefresher{}
	return NewUseCase(api, refresher, staticToken(token), logger.NewNop()), api, refresher
}

func TestUseCase_Pay(t *testing.T) {
	uc, api, refresher := newTestUseCase("tok")

	api.On("GetNotificationDetails", mock.Anything, "tok", bookingID, serviceType).
		Return(&domain.NotificationDetails{BookingID: bookingID, Status: "pending"}, nil).Once()
	api.On("ConfirmPayment", mock.Anything, "tok", bookingID, serviceType).Return(nil)
	api.On("GetNotificationDetails", mock.Anything, "tok", bookingID, serviceType).
		Return(&domain.NotificationDetails{BookingID: bookingID, Status: "completed"}, nil).Once()

	res, err := uc.Pay(context.Background(), pair)
	require.NoError(t, err)
	assert.Equal(t, MsgPaid, res.Message)
	require.NotNil(t, res.Details)
	assert.Equal(t, "completed", res.Details.Status)
	assert.Equal(t, []bool{true}, refresher.calls)
	api.AssertExpectations(t)
}

func TestUseCase_PayAlreadyCompleted(t *testing.T) {
	uc, api, refresher := newTestUseCase("tok")

	api.On("GetNotificationDetails", mock.Anything, "tok", bookingID, serviceType).
		Return(&domain.NotificationDetails{Status: "completed"}, nil)

	_, err := uc.Pay(context.Background(), pair)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	api.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, refresher.calls)
}

func TestUseCase_PayRejectedByServer(t *testing.T) {
	uc, api, refresher := newTestUseCase("tok")

	api.On("GetNotificationDetails", mock.Anything, "tok", bookingID, serviceType).
		Return(&domain.NotificationDetails{Status: "pending"}, nil)
	api.On("ConfirmPayment", mock.Anything, "tok", bookingID, serviceType).
		Return(&citizenapi.ActionError{Message: "Payment update failed"})

	_, err := uc.Pay(context.Background(), pair)
	assert.ErrorIs(t, err, citizenapi.ErrRejected)
	assert.Equal(t, []string{"Payment update failed"}, citizenapi.UserMessages(err, ""))
	assert.Empty(t, refresher.calls)
}

func TestUseCase_RejectRequiresReason(t *testing.T) {
	uc, api, _ := newTestUseCase("tok")

	_, err := uc.Reject(context.Background(), pair, "   ")
	require.ErrorIs(t, err, ErrInvalidInput)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"Please enter a reason for rejection."}, verrs.Messages())
	api.AssertNotCalled(t, "GetNotificationDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Reject(t *testing.T) {
	uc, api, refresher := newTestUseCase("tok")
	refresher.failure = errors.New("offline")

	api.On("GetNotificationDetails", mock.Anything, "tok", bookingID, serviceType).
		Return(&domain.NotificationDetails{Status: "pending"}, nil)
	api.On("RejectPayment", mock.Anything, "tok", bookingID, serviceType, "Amount is wrong").Return(nil)

	res, err := uc.Reject(context.Background(), pair, " Amount is wrong ")
	require.NoError(t, err)
	assert.Equal(t, MsgRejected, res.Message)
	assert.Equal(t, []bool{true}, refresher.calls)
}

func TestUseCase_RequiresSessionAndPair(t *testing.T) {
	uc, _, _ := newTestUseCase("")

	_, err := uc.Pay(context.Background(), pair)
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = uc.Pay(context.Background(), domain.SeenPair{ServiceType: serviceType})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
