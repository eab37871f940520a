package get_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/account"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) CheckAuth(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*domain.Session)
	return res, args.Error(1)
}

type mockLoginState struct {
	mock.Mock
}

func (m *mockLoginState) CheckLoginState(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func testSession() *domain.Session {
	return &domain.Session{Access: "token", FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", UserID: "42"}
}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_JustLoggedIn(t *testing.T) {
	auth := &mockAuth{}
	state := &mockLoginState{}
	auth.On("CheckAuth", mock.Anything).Return(testSession(), nil)
	state.On("CheckLoginState", mock.Anything).Return(true, nil)

	w := serve(NewHandler(auth, state, logger.NewNop()))

	require.Equal(t, http.StatusOK, w.Code)
	var res SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "42", res.UserID)
	assert.Equal(t, "asha@example.com", res.Email)
	assert.Equal(t, testSession().DisplayName(), res.DisplayName)
	assert.True(t, res.NotificationsOpen)
	auth.AssertExpectations(t)
	state.AssertExpectations(t)
}

func TestHandle_RegularVisit(t *testing.T) {
	auth := &mockAuth{}
	state := &mockLoginState{}
	auth.On("CheckAuth", mock.Anything).Return(testSession(), nil)
	state.On("CheckLoginState", mock.Anything).Return(false, nil)

	w := serve(NewHandler(auth, state, logger.NewNop()))

	require.Equal(t, http.StatusOK, w.Code)
	var res SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.NotificationsOpen)
}

func TestHandle_LoginStateFailureStillResponds(t *testing.T) {
	auth := &mockAuth{}
	state := &mockLoginState{}
	auth.On("CheckAuth", mock.Anything).Return(testSession(), nil)
	state.On("CheckLoginState", mock.Anything).Return(true, errors.New("refresh failed"))

	w := serve(NewHandler(auth, state, logger.NewNop()))

	require.Equal(t, http.StatusOK, w.Code)
	var res SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.NotificationsOpen)
}

func TestHandle_SessionExpired(t *testing.T) {
	auth := &mockAuth{}
	state := &mockLoginState{}
	auth.On("CheckAuth", mock.Anything).Return(nil, fmt.Errorf("%w: CheckAuth - token rejected", account.ErrSessionExpired))

	w := serve(NewHandler(auth, state, logger.NewNop()))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, handlers.RedirectLogin, res.Redirect)
	state.AssertNotCalled(t, "CheckLoginState", mock.Anything)
}

func TestHandle_NetworkError(t *testing.T) {
	auth := &mockAuth{}
	state := &mockLoginState{}
	auth.On("CheckAuth", mock.Anything).Return(nil, fmt.Errorf("account: %w", citizenapi.ErrNetwork))

	w := serve(NewHandler(auth, state, logger.NewNop()))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	state.AssertNotCalled(t, "CheckLoginState", mock.Anything)
}
