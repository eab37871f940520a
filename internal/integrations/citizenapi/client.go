package citizenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxResponseBody = 10 << 20
	maxErrorSnippet = 512
)

// Client клиент REST API городских сервисов
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента. metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, userAgent string, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// BaseURL адрес сервера без завершающего слэша
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AbsoluteURL дополняет относительный путь к файлу адресом сервера
func (c *Client) AbsoluteURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

type request struct {
	endpoint    string
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
}

func jsonRequest(endpoint, method, path, token string, payload interface{}) (request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("%w: %s - failed to encode body: %v", ErrInternal, endpoint, err)
	}
	return request{
		endpoint:    endpoint,
		method:      method,
		path:        path,
		token:       token,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, nil
}

// send выполняет запрос и возвращает тело успешного ответа
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	start := time.Now()
	body, err := c.execute(ctx, r)
	if c.metrics != nil {
		c.metrics.RecordUpstreamCall(r.endpoint, outcome(err), time.Since(start))
	}
	return body, err
}

func (c *Client) execute(ctx context.Context, r request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, r.endpoint, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("%s: request_id=%s failed: %v", r.endpoint, requestID, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, r.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %s - failed to read body: %v", ErrNetwork, r.endpoint, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	c.log.Warn("%s: request_id=%s status=%d", r.endpoint, requestID, resp.StatusCode)
	return nil, classifyStatus(r.endpoint, resp.StatusCode, body)
}

// doJSON выполняет запрос и декодирует тело в out (если out не nil)
func (c *Client) doJSON(ctx context.Context, r request, out interface{}) error {
	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, r.endpoint, err)
	}
	return nil
}

// Обработка статус-кодов
func classifyStatus(endpoint string, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if vErr := parseErrorBody(status, body, ErrUnauthorized); vErr != nil {
			return vErr
		}
		return fmt.Errorf("%w: %s: status %d", ErrUnauthorized, endpoint, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case status >= 400 && status < 500:
		if vErr := parseErrorBody(status, body, ErrValidation); vErr != nil {
			return vErr
		}
		return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, endpoint, status, snippet(body))
	default:
		return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, endpoint, status, snippet(body))
	}
}

// parseErrorBody разбирает тело ошибки вида {"field": ["msg"], "detail": "..."}.
// Возвращает nil, если тело не JSON-объект.
func parseErrorBody(status int, body []byte, kind error) *ValidationError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	vErr := &ValidationError{Status: status, Fields: map[string][]string{}, kind: kind}
	for field, value := range raw {
		msgs := messagesOf(value)
		if len(msgs) == 0 {
			continue
		}
		if field == "detail" || field == "message" {
			if vErr.Detail == "" {
				vErr.Detail = msgs[0]
			}
			continue
		}
		vErr.Fields[field] = msgs
	}
	return vErr
}

func messagesOf(value json.RawMessage) []string {
	var list []json.RawMessage
	if err := json.Unmarshal(value, &list); err == nil {
		var msgs []string
		for _, item := range list {
			if s := scalarText(item); s != "" {
				msgs = append(msgs, s)
			}
		}
		return msgs
	}
	if s := scalarText(value); s != "" {
		return []string{s}
	}
	return nil
}

func scalarText(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	trimmed := bytes.TrimSpace(value)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	return string(trimmed)
}

func snippet(body []byte) string {
	if len(body) > maxErrorSnippet {
		return string(body[:maxErrorSnippet]) + "..."
	}
	return string(body)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrRejected):
		return "rejected"
	default:
		return "error"
	}
}

// flatten приводит поля JSON-объекта к строкам: строки без кавычек, null пропускается,
// остальное как JSON-текст
func flatten(raw map[string]json.RawMessage) map[string]string {
	res := make(map[string]string, len(raw))
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			res[key] = s
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			res[key] = string(value)
			continue
		}
		res[key] = buf.String()
	}
	return res
}
