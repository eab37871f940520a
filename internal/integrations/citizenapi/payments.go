package citizenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// ConfirmPayment отмечает заявку оплаченной
func (c *Client) ConfirmPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar) error {
	query := url.Values{}
	query.Set("booking_id", bookingID.String())
	query.Set("service_type", serviceType.String())

	return c.paymentAction(ctx, request{
		endpoint: "payments.confirm",
		method:   http.MethodPut,
		path:     "/api/user/update-payment-success/",
		query:    query,
		token:    token,
	})
}

// RejectPayment отклоняет оплату с указанием причины
func (c *Client) RejectPayment(ctx context.Context, token string, bookingID, serviceType types.RawScalar, reason string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"booking_id", bookingID.String()},
		{"service_type", serviceType.String()},
		{"reason_for_rejection", reason},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("%w: payments.reject - failed to write field %s: %v", ErrInternal, f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: payments.reject - failed to close form: %v", ErrInternal, err)
	}

	return c.paymentAction(ctx, request{
		endpoint:    "payments.reject",
		method:      http.MethodPut,
		path:        "/api/user/update-payment-reject/",
		token:       token,
		body:        &buf,
		contentType: w.FormDataContentType(),
	})
}

// paymentAction успешен только при status_code == 200 и status == true в теле ответа
func (c *Client) paymentAction(ctx context.Context, r request) error {
	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}

	var resp actionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, r.endpoint, err)
	}
	if !resp.succeeded() {
		msg := resp.Message.String()
		if msg == "" {
			msg = "Payment update failed"
		}
		return &ActionError{Message: msg}
	}
	return nil
}
