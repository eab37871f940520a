package account

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

func (m *mockAPI) GetAccountDetails(ctx context.Context, token string) (*domain.Profile, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*domain.Profile)
	return res, args.Error(1)
}

func (m *mockAPI) UpdateAccountDetails(ctx context.Context, token string, profile *domain.Profile) error {
	return m.Called(ctx, token, profile).Error(0)
}

type fakeSession struct {
	sess    domain.Session
	dropped bool
}

func (f *fakeSession) Token(ctx context.Context) (string, error) {
	if f.sess.Access == "" {
		return "", session.ErrNoSession
	}
	return f.sess.Access, nil
}

func (f *fakeSession) Load(ctx context.Context) (*domain.Session, error) {
	s := f.sess
	return &s, nil
}

func (f *fakeSession) Save(ctx context.Context, sess *domain.Session) error {
	if sess.FirstName != "" {
		f.sess.FirstName = sess.FirstName
	}
	if sess.LastName != "" {
		f.sess.LastName = sess.LastName
	}
	if sess.Email != "" {
		f.sess.Email = sess.Email
	}
	return nil
}

func (f *fakeSession) DropAccess(ctx context.Context) error {
	f.sess.Access = ""
	f.dropped = true
	return nil
}

func TestService_CheckAuthDropsRejectedToken(t *testing.T) {
	api := &mockAPI{}
	sess := &fakeSession{sess: domain.Session{Access: "expired", FirstName: "Asha"}}
	svc := NewService(api, sess, logger.NewNop())

	api.On("GetAccountDetails", mock.Anything, "expired").Return(nil, citizenapi.ErrUnauthorized)

	_, err := svc.CheckAuth(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, sess.dropped)
	assert.Equal(t, "Asha", sess.sess.FirstName)
}

func TestService_CheckAuthOK(t *testing.T) {
	api := &mockAPI{}
	sess := &fakeSession{sess: domain.Session{Access: "tok", FirstName: "Asha"}}
	svc := NewService(api, sess, logger.NewNop())

	api.On("GetAccountDetails", mock.Anything, "tok").Return(&domain.Profile{FirstName: "Asha"}, nil)

	res, err := svc.CheckAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asha", res.FirstName)
	assert.False(t, sess.dropped)
}

func TestService_CheckAuthWithoutSession(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api, &fakeSession{}, logger.NewNop())

	_, err := svc.CheckAuth(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
	api.AssertNotCalled(t, "GetAccountDetails", mock.Anything, mock.Anything)
}

func TestService_UpdateRefreshesSession(t *testing.T) {
	api := &mockAPI{}
	sess := &fakeSession{sess: domain.Session{Access: "tok", FirstName: "Old"}}
	svc := NewService(api, sess, logger.NewNop())

	profile := &domain.Profile{FirstName: "Asha", LastName: "Nair", Email: "asha@example.com", DOB: "1990-01-31", Pincode: "682001"}
	api.On("UpdateAccountDetails", mock.Anything, "tok", profile).Return(nil)

	require.NoError(t, svc.Update(context.Background(), profile))
	assert.Equal(t, "Asha", sess.sess.FirstName)
	assert.Equal(t, "asha@example.com", sess.sess.Email)
}

func TestService_UpdateValidation(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api, &fakeSession{sess: domain.Session{Access: "tok"}}, logger.NewNop())

	tests := []struct {
		name    string
		profile *domain.Profile
	}{
		{"bad email", &domain.Profile{FirstName: "A", LastName: "B", Email: "nope"}},
		{"bad pincode", &domain.Profile{FirstName: "A", LastName: "B", Email: "a@b.co", Pincode: "68A"}},
		{"bad dob", &domain.Profile{FirstName: "A", LastName: "B", Email: "a@b.co", DOB: "31/01/1990"}},
		{"missing name", &domain.Profile{Email: "a@b.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Update(context.Background(), tt.profile)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	api.AssertNotCalled(t, "UpdateAccountDetails", mock.Anything, mock.Anything, mock.Anything)
}
