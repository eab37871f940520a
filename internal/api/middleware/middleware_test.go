package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{serviceType}/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/waste/12", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/api/v1/bookings/{serviceType}/{id}", status: http.StatusTeapot}, m.requests[0])
}

func TestSessionGuard(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("no session", func(t *testing.T) {
		guard := SessionGuard(tokenFunc(func(context.Context) (string, error) {
			return "", session.ErrNoSession
		}), logger.NewNop())

		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/account", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var res handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, handlers.RedirectLogin, res.Redirect)
	})

	t.Run("storage failure", func(t *testing.T) {
		guard := SessionGuard(tokenFunc(func(context.Context) (string, error) {
			return "", errors.New("disk i/o error")
		}), logger.NewNop())

		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/account", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("authorized", func(t *testing.T) {
		guard := SessionGuard(tokenFunc(func(context.Context) (string, error) {
			return "tok", nil
		}), logger.NewNop())

		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/account", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
