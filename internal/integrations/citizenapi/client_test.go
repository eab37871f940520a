package citizenapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

type recordedCall struct {
	endpoint string
	outcome  string
}

type fakeMetrics struct {
	calls []recordedCall
}

func (m *fakeMetrics) RecordUpstreamCall(endpoint, outcome string, _ time.Duration) {
	m.calls = append(m.calls, recordedCall{endpoint: endpoint, outcome: outcome})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := &fakeMetrics{}
	return NewClient(srv.URL, 5*time.Second, "citizen-client/test", m, logger.NewNop()), m
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestLogin_StoresAllFields(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body.Email)

		writeJSON(w, http.StatusOK, `{"access":"tok","refresh":"ref","first_name":"Asha","user_id":17,"is_staff":false,"middle_name":null}`)
	})

	fields, err := client.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok", fields["access"])
	assert.Equal(t, "17", fields["user_id"])
	assert.Equal(t, "false", fields["is_staff"])
	assert.NotContains(t, fields, "middle_name")
	assert.Equal(t, []recordedCall{{endpoint: "auth.login", outcome: "ok"}}, m.calls)
}

func TestLogin_FieldErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"email":["Enter a valid email address."],"password":"This field may not be blank."}`)
	})

	_, err := client.Login(context.Background(), "bad", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{
		"email: Enter a valid email address.",
		"password: This field may not be blank.",
	}, vErr.Messages())
}

func TestLogin_UnauthorizedDetail(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"No active account found with the given credentials"}`)
	})

	_, err := client.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, []string{"No active account found with the given credentials"}, UserMessages(err, "Login failed."))
	assert.Equal(t, "unauthorized", m.calls[0].outcome)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, time.Second, "", nil, logger.NewNop())

	_, err := client.ListNotifications(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, []string{"Network error. Please try again."}, UserMessages(err, "fallback"))
}

func TestUnexpectedStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := client.GetAccountDetails(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestListNotifications_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"id":1,"booking_id":10,"service_type":"waste"},{"id":2}]`, want: 2},
		{name: "wrapped", body: `{"data":[{"id":1,"booking_id":"10","service_type":"waste"}]}`, want: 1},
		{name: "wrapped non array", body: `{"data":{"id":1}}`, want: 0},
		{name: "unrelated object", body: `{"message":"nothing here"}`, want: 0},
		{name: "string", body: `"oops"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				writeJSON(w, http.StatusOK, tt.body)
			})

			list, err := client.ListNotifications(context.Background(), "tok")
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestListNotifications_KeepsRawIdentifiers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":1,"booking_id":10,"service_type":"waste"},{"id":2,"booking_id":"10","service_type":"waste"}]`)
	})

	list, err := client.ListNotifications(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].Pair(), list[1].Pair())
	assert.Equal(t, types.ScalarFromInt(10), list[0].BookingID)
}

func TestListBookings_Aggregate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "notactive", r.URL.Query().Get("status"))
		assert.Equal(t, "all", r.URL.Query().Get("type"))
		writeJSON(w, http.StatusOK, `{
			"cesspool_bookings": [{"id": 5, "service_type": "cesspool"}],
			"waste_bookings": [{"id": 1, "service_type": "Private Waste", "request_images": [{"image": "/media/a.jpg"}]}],
			"mandap_bookings": [{"id": 2, "mandap_name": "Town Hall", "service_type": "mandap", "kalyanmandap_images": [{"image": "https://cdn.example/h.jpg"}]}],
			"complaints_bookings": [{"id": 4, "service_type": "complaints", "mandap_name": null}]
		}`)
	})

	list, err := client.ListBookings(context.Background(), "tok", domain.TabPast, "all")
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, domain.KindWaste, list[0].Kind)
	assert.Equal(t, []string{client.BaseURL() + "/media/a.jpg"}, list[0].Images)
	assert.Equal(t, domain.KindMandap, list[1].Kind)
	assert.Equal(t, []string{"https://cdn.example/h.jpg"}, list[1].Images)
	assert.Equal(t, domain.KindComplaints, list[2].Kind)
	assert.Equal(t, domain.KindCesspool, list[3].Kind)
}

func TestListBookings_Array(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 9, "service_type": "air pollution", "status": "pending"}]`)
	})

	list, err := client.ListBookings(context.Background(), "tok", domain.TabActive, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.KindPollution, list[0].Kind)
	assert.Equal(t, "9", list[0].ID)
}

func TestGetNotificationDetails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/notification-details/", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("booking_id"))
		assert.Equal(t, "waste", r.URL.Query().Get("service_type"))
		writeJSON(w, http.StatusOK, `{"data":{"category_name":"Garbage","status":"pending","complaint_images":[{"image":"/media/c.png"}]}}`)
	})

	details, err := client.GetNotificationDetails(context.Background(), "tok", types.ScalarFromInt(10), types.ScalarFromString("waste"))
	require.NoError(t, err)
	assert.Equal(t, "Garbage", details.CategoryName)
	assert.True(t, details.CanPay())
	assert.Equal(t, []string{client.BaseURL() + "/media/c.png"}, details.Images)
}

func TestPaymentActions(t *testing.T) {
	t.Run("confirm succeeds", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/user/update-payment-success/", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"status_code":200,"status":true,"message":"Payment updated"}`)
		})
		err := client.ConfirmPayment(context.Background(), "tok", types.ScalarFromInt(3), types.ScalarFromString("waste"))
		require.NoError(t, err)
	})

	t.Run("confirm rejected in body", func(t *testing.T) {
		client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"status_code":400,"status":false,"message":"Already paid"}`)
		})
		err := client.ConfirmPayment(context.Background(), "tok", types.ScalarFromInt(3), types.ScalarFromString("waste"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRejected))
		assert.Equal(t, []string{"Already paid"}, UserMessages(err, "Payment failed"))
		assert.Equal(t, "ok", m.calls[0].outcome)
	})

	t.Run("reject sends multipart reason", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "3", r.FormValue("booking_id"))
			assert.Equal(t, "waste", r.FormValue("service_type"))
			assert.Equal(t, "Amount is wrong", r.FormValue("reason_for_rejection"))
			writeJSON(w, http.StatusOK, `{"status_code":200,"status":true}`)
		})
		err := client.RejectPayment(context.Background(), "tok", types.ScalarFromInt(3), types.ScalarFromString("waste"), "Amount is wrong")
		require.NoError(t, err)
	})
}

func TestSendOTP(t *testing.T) {
	t.Run("returns secret key", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"secret_key":"s3cr3t","message":"OTP sent"}`)
		})
		secret, err := client.SendOTP(context.Background(), "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", secret)
	})

	t.Run("missing secret key", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"message":"Email already registered"}`)
		})
		_, err := client.SendOTP(context.Background(), "asha@example.com")
		require.Error(t, err)
		assert.Equal(t, []string{"Email already registered"}, UserMessages(err, "Failed to send OTP"))
	})
}

func TestVerifyOTP_RequiresExactMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"message":"OTP expired"}`)
	})

	err := client.VerifyOTP(context.Background(), "asha@example.com", "s3cr3t", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))
}

func TestSubmit_Multipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/complaint_mgmt/create/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "3", r.FormValue("category"))

		files := r.MultipartForm.File["complaint_images"]
		require.Len(t, files, 2)
		assert.Equal(t, "street.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))
		assert.Equal(t, "photo_1.jpg", files[1].Filename)
		assert.Equal(t, "image/jpeg", files[1].Header.Get("Content-Type"))

		writeJSON(w, http.StatusCreated, `{"id": 77, "message": "Complaint registered"}`)
	})

	form := &Form{Images: []Image{{Name: "street.png", Content: []byte("png")}, {Content: []byte("jpg")}}}
	form.Set("category", "3")

	resp, err := client.Submit(context.Background(), "tok", SubmissionComplaint, form)
	require.NoError(t, err)
	assert.Equal(t, "77", resp["id"])
}

func TestAbsoluteURL(t *testing.T) {
	client := NewClient("https://mobile.wemakesoftwares.com/", time.Second, "", nil, logger.NewNop())

	assert.Equal(t, "https://mobile.wemakesoftwares.com/media/a.jpg", client.AbsoluteURL("/media/a.jpg"))
	assert.Equal(t, "https://mobile.wemakesoftwares.com/media/a.jpg", client.AbsoluteURL("media/a.jpg"))
	assert.Equal(t, "http://cdn/a.jpg", client.AbsoluteURL("http://cdn/a.jpg"))
}
