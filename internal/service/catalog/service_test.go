package catalog

import (
	"context"
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

func (m *mockAPI) ListMandaps(ctx context.Context, token string) ([]*domain.Mandap, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).([]*domain.Mandap)
	return res, args.Error(1)
}

func (m *mockAPI) GetMandap(ctx context.Context, token, id string) (*domain.Mandap, error) {
	args := m.Called(ctx, token, id)
	res, _ := args.Get(0).(*domain.Mandap)
	return res, args.Error(1)
}

func (m *mockAPI) ListComplaintCategories(ctx context.Context, token string) ([]*domain.Category, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).([]*domain.Category)
	return res, args.Error(1)
}

func (m *mockAPI) ListPollutionCategories(ctx context.Context, token string) ([]*domain.Category, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).([]*domain.Category)
	return res, args.Error(1)
}

type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", session.ErrNoSession
	}
	return string(t), nil
}

func TestService_ListMandapsWithoutSession(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api, staticToken(""), logger.NewNop())

	api.On("ListMandaps", mock.Anything, "").Return([]*domain.Mandap{{ID: "1", Name: "Town Hall"}}, nil)

	res, err := svc.ListMandaps(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Town Hall", res[0].Name)
}

func TestService_GetMandap(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api, staticToken("tok"), logger.NewNop())

	api.On("GetMandap", mock.Anything, "tok", "1").Return(&domain.Mandap{ID: "1"}, nil)
	api.On("GetMandap", mock.Anything, "tok", "404").Return(nil, citizenapi.ErrNotFound)

	res, err := svc.GetMandap(context.Background(), " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "1", res.ID)

	_, err = svc.GetMandap(context.Background(), "404")
	assert.ErrorIs(t, err, ErrMandapNotFound)

	_, err = svc.GetMandap(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Categories(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api, staticToken("tok"), logger.NewNop())

	api.On("ListComplaintCategories", mock.Anything, "tok").Return([]*domain.Category{{ID: "3", Name: "Roads"}}, nil)
	api.On("ListPollutionCategories", mock.Anything, "tok").Return(nil, citizenapi.ErrNetwork)

	res, err := svc.ComplaintCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.PollutionCategories(context.Background())
	assert.ErrorIs(t, err, citizenapi.ErrNetwork)
}
