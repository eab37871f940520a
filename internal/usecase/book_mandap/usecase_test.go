package book_mandap

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
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) BookMandap(ctx context.Context, token string, req citizenapi.BookMandapRequest) (map[string]string, error) {
	args := m.Called(ctx, token, req)
	res, _ := args.Get(0).(map[string]string)
	return res, args.Error(1)
}

type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", session.ErrNoSession
	}
	return string(t), nil
}

func validRequest() *Request {
	return &Request{
		MandapID:       "4",
		Occasion:       "Wedding",
		NumberOfPeople: "250",
		StartDatetime:  "2025-06-15T18:00:00",
		EndDatetime:    "2025-06-15T23:00:00",
		Duration:       "5",
	}
}

func TestUseCase_Execute(t *testing.T) {
	api := &mockAPI{}
	uc := NewUseCase(api, staticToken("tok"), logger.NewNop())

	api.On("BookMandap", mock.Anything, "tok", mock.MatchedBy(func(r citizenapi.BookMandapRequest) bool {
		return r.Kalyanmandap == "4" && r.PaymentMethod == "Online" && r.NumberOfPeople == "250"
	})).Return(map[string]string{"id": "77", "status": "pending"}, nil)

	res, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "77", res.Result["id"])
	api.AssertExpectations(t)
}

func TestUseCase_Validation(t *testing.T) {
	api := &mockAPI{}
	uc := NewUseCase(api, staticToken("tok"), logger.NewNop())

	req := validRequest()
	req.Occasion = " "
	req.NumberOfPeople = "-1"
	req.EndDatetime = "2025-06-15T17:00:00"
	req.Duration = "abc"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{
		"Occasion is required",
		"Enter a valid number of people",
		"End date & time must be after the start",
		"Enter a valid duration (in hours)",
	}, verrs.Messages())
	api.AssertNotCalled(t, "BookMandap", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_BadDateFormat(t *testing.T) {
	uc := NewUseCase(&mockAPI{}, staticToken("tok"), logger.NewNop())

	req := validRequest()
	req.StartDatetime = "15/06/2025 18:00"

	_, err := uc.Execute(context.Background(), req)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{msgDateFormat}, verrs.Fields()["start_datetime"])
}

func TestUseCase_RejectedDateFieldsFirst(t *testing.T) {
	api := &mockAPI{}
	uc := NewUseCase(api, staticToken("tok"), logger.NewNop())

	upstream := &citizenapi.ValidationError{
		Status: 400,
		Fields: map[string][]string{
			"end_datetime":     {"Datetime has wrong format."},
			"number_of_people": {"Exceeds mandap capacity."},
			"occasion":         {"Exceeds mandap capacity."},
		},
	}
	api.On("BookMandap", mock.Anything, "tok", mock.Anything).Return(nil, upstream)

	_, err := uc.Execute(context.Background(), validRequest())

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, []string{msgDateFormat, "Exceeds mandap capacity."}, rejected.Messages)
	assert.ErrorIs(t, err, citizenapi.ErrValidation)
}

func TestUseCase_RejectedWithoutMessages(t *testing.T) {
	api := &mockAPI{}
	uc := NewUseCase(api, staticToken("tok"), logger.NewNop())

	api.On("BookMandap", mock.Anything, "tok", mock.Anything).
		Return(nil, &citizenapi.ValidationError{Status: 400})

	_, err := uc.Execute(context.Background(), validRequest())

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, []string{msgCheckInput}, rejected.Messages)
}

func TestUseCase_NetworkErrorPassesThrough(t *testing.T) {
	api := &mockAPI{}
	uc := NewUseCase(api, staticToken("tok"), logger.NewNop())

	api.On("BookMandap", mock.Anything, "tok", mock.Anything).Return(nil, citizenapi.ErrNetwork)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, citizenapi.ErrNetwork)

	var rejected *RejectedError
	assert.False(t, errors.As(err, &rejected))
}

func TestUseCase_RequiresSession(t *testing.T) {
	uc := NewUseCase(&mockAPI{}, staticToken(""), logger.NewNop())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, session.ErrNoSession)
}
