package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/infra/storage/kv"
	"github.com/m04kA/SMC-CitizenClient/pkg/database"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/txmanager"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

func newTestService(t *testing.T) (*Service, *kv.Repository) {
	t.Helper()
	ctx := context.Background()

	db, driver, err := database.Connect(ctx, filepath.Join(t.TempDir(), "session.db"), database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := kv.NewRepository(db, driver)
	require.NoError(t, repo.Migrate(ctx))

	return NewService(repo, txmanager.NewSQLTransactionManager(db), logger.NewNop()), repo
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestService_TokenWithoutSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestService_SaveLoginFillsUserIDFromToken(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	access := signedToken(t, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(time.Hour).Unix()})
	require.NoError(t, svc.SaveLogin(ctx, map[string]string{
		"access":     access,
		"refresh":    "refresh-token",
		"first_name": "Asha",
		"last_name":  "Nair",
		"message":    "Login successful",
	}))

	sess, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "42", sess.UserID)
	assert.Equal(t, "Asha Nair", sess.DisplayName())

	// лишние поля ответа тоже сохраняются
	message, err := repo.Get(ctx, "message")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", message)
}

func TestService_ClearKeepsSeenPairs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &domain.Session{Access: "a", Refresh: "r", Email: "a@b.co"}))
	seen := domain.SeenSet{{BookingID: types.ScalarFromInt(10), ServiceType: types.ScalarFromString("waste")}}
	require.NoError(t, svc.SaveSeen(ctx, seen))

	require.NoError(t, svc.Clear(ctx))

	sess, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Email)

	stored, err := svc.LoadSeen(ctx)
	require.NoError(t, err)
	assert.Equal(t, seen, stored)

	require.NoError(t, svc.Wipe(ctx))
	stored, err = svc.LoadSeen(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_LoadSeenToleratesGarbage(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeySeenPairs, "{not json"))

	seen, err := svc.LoadSeen(ctx)
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestService_SeenPairsKeepRawTypes(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeySeenPairs, `[{"booking_id":10,"service_type":"waste"},{"booking_id":"10","service_type":"waste"}]`))

	seen, err := svc.LoadSeen(ctx)
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])
	assert.True(t, seen.Contains(domain.SeenPair{BookingID: types.ScalarFromInt(10), ServiceType: types.ScalarFromString("waste")}))
}

func TestService_JustLoggedInIsConsumedOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkJustLoggedIn(ctx))

	first, err := svc.ConsumeJustLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := svc.ConsumeJustLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestService_DropAccessKeepsProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &domain.Session{Access: "a", FirstName: "Asha"}))
	require.NoError(t, svc.DropAccess(ctx))

	sess, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "Asha", sess.FirstName)
}

func TestService_Migrate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Migrate(ctx))
	version, err := repo.Get(ctx, KeySchemaVersion)
	require.NoError(t, err)
	assert.Equal(t, "1", version)

	require.NoError(t, repo.Set(ctx, KeySchemaVersion, "7"))
	assert.ErrorIs(t, svc.Migrate(ctx), ErrUnsupportedSchema)
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(-time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "user-7", "exp": exp.Unix()})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.True(t, claims.Expired(time.Now()))

	_, err = ParseClaims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
