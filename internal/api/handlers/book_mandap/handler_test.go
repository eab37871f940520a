package book_mandap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
	bookMandap "github.com/m04kA/SMC-CitizenClient/internal/usecase/book_mandap"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookMandap.Request) (*bookMandap.Response, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*bookMandap.Response)
	return res, args.Error(1)
}

const bookingBody = `{"occasion":"Wedding","number_of_people":"200","start_datetime":"2025-06-15T18:00:00","end_datetime":"2025-06-15T23:00:00","duration":"5"}`

func bookRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mandaps/3/bookings", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"mandapId": "3"})
}

func TestHandler_Book(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *bookMandap.Request) bool {
		return r.MandapID == "3" && r.Occasion == "Wedding" && r.Duration == "5"
	})).Return(&bookMandap.Response{MandapID: "3", Result: map[string]string{"id": "77"}}, nil)
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, bookRequest(bookingBody))
	require.Equal(t, http.StatusCreated, rec.Code)

	var res BookMandapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, msgBooked, res.Message)
	assert.Equal(t, "77", res.Booking["id"])
}

func TestHandler_BookRejected(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &bookMandap.RejectedError{
		Messages: []string{"Please enter date and time in the format YYYY-MM-DDTHH:mm:ss (e.g. 2025-05-22T14:30:00).", "This mandap is already booked"},
		Err:      fmt.Errorf("upstream"),
	})
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, bookRequest(bookingBody))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Toasts, 2)
	assert.Equal(t, "This mandap is already booked", res.Toasts[1])
}

func TestHandler_BookWithoutSession(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, session.ErrNoSession)
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, bookRequest(bookingBody))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, handlers.RedirectLogin, res.Redirect)
}
