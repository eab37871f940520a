package login

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
	"github.com/m04kA/SMC-CitizenClient/internal/service/auth"
	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*models.LoginResponse)
	return res, args.Error(1)
}

func doLogin(t *testing.T, svc *mockAuth, body string) (*httptest.ResponseRecorder, handlers.ErrorResponse) {
	t.Helper()
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var errResp handlers.ErrorResponse
	if rec.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	}
	return rec, errResp
}

func TestHandler_LoginSuccess(t *testing.T) {
	svc := &mockAuth{}
	svc.On("Login", mock.Anything, "asha@example.com", "secret").
		Return(&models.LoginResponse{FirstName: "Asha", Email: "asha@example.com", UserID: "7"}, nil)

	rec, _ := doLogin(t, svc, `{"email":"asha@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Asha", res.FirstName)
	assert.Equal(t, "7", res.UserID)
}

func TestHandler_LoginInvalidBody(t *testing.T) {
	rec, errResp := doLogin(t, &mockAuth{}, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidRequestBody, errResp.Error)
}

func TestHandler_LoginValidation(t *testing.T) {
	svc := &mockAuth{}
	verrs := domain.ValidationErrors{{Field: "password", Message: "Password is required"}}
	svc.On("Login", mock.Anything, "asha@example.com", "").
		Return(nil, fmt.Errorf("%w: %w", auth.ErrInvalidInput, verrs))

	rec, errResp := doLogin(t, svc, `{"email":"asha@example.com","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Password is required"}, errResp.Toasts)
	assert.Contains(t, errResp.Fields, "password")
}

func TestHandler_LoginRejectedDoesNotRedirect(t *testing.T) {
	svc := &mockAuth{}
	rejected := fmt.Errorf("%w: No active account found with the given credentials", citizenapi.ErrUnauthorized)
	svc.On("Login", mock.Anything, "asha@example.com", "wrong").Return(nil, rejected)

	rec, errResp := doLogin(t, svc, `{"email":"asha@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgInvalidCredentials, errResp.Error)
	assert.Empty(t, errResp.Redirect)
}

func TestHandler_LoginNetworkError(t *testing.T) {
	svc := &mockAuth{}
	svc.On("Login", mock.Anything, "asha@example.com", "secret").
		Return(nil, fmt.Errorf("%w: dial tcp: timeout", citizenapi.ErrNetwork))

	rec, _ := doLogin(t, svc, `{"email":"asha@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
