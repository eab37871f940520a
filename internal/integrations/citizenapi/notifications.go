package citizenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// ListNotifications получает уведомления пользователя.
// IsNew у результата не заполнен: сопоставление с просмотренными делает хранилище уведомлений.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]domain.Notification, error) {
	body, err := c.send(ctx, request{
		endpoint: "notifications.list",
		method:   http.MethodGet,
		path:     "/api/user/notifications/",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	wire := ExtractNotifications(body)
	res := make([]domain.Notification, 0, len(wire))
	for i := range wire {
		res = append(res, wire[i].ToDomain())
	}
	return res, nil
}

// ExtractNotifications принимает массив или объект {"data": [...]}.
// Любая другая форма ответа даёт пустой список.
func ExtractNotifications(body []byte) []Notification {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	var list []Notification
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil
		}
	case '{':
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil
		}
		data := bytes.TrimSpace(wrapped.Data)
		if len(data) == 0 || data[0] != '[' {
			return nil
		}
		if err := json.Unmarshal(data, &list); err != nil {
			return nil
		}
	}
	return list
}

// ToDomain конвертирует в доменную модель
func (n *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:            n.ID,
		BookingID:     n.BookingID,
		ServiceType:   n.ServiceType,
		Category:      n.Category.String(),
		Status:        n.Status.String(),
		PaymentStatus: n.PaymentStatus.String(),
		Title:         n.Title.String(),
		Message:       n.Message.String(),
		CreatedAt:     n.CreatedAt.String(),
	}
}

// GetNotificationDetails получает детали заявки, на которую ссылается уведомление
func (c *Client) GetNotificationDetails(ctx context.Context, token string, bookingID, serviceType types.RawScalar) (*domain.NotificationDetails, error) {
	query := url.Values{}
	query.Set("booking_id", bookingID.String())
	query.Set("service_type", serviceType.String())

	var resp notificationDetailsResponse
	err := c.doJSON(ctx, request{
		endpoint: "notifications.details",
		method:   http.MethodGet,
		path:     "/api/user/notification-details/",
		query:    query,
		token:    token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: notifications.details - no data", ErrNotFound)
	}

	d := resp.Data
	images := make([]string, 0, len(d.ComplaintImages))
	for _, img := range d.ComplaintImages {
		if img != "" {
			images = append(images, c.AbsoluteURL(string(img)))
		}
	}
	return &domain.NotificationDetails{
		BookingID:       bookingID,
		ServiceType:     serviceType,
		CategoryName:    d.CategoryName.String(),
		SubcategoryName: d.SubcategoryName.String(),
		Status:          d.Status.String(),
		Description:     d.Description.String(),
		Location:        d.Location.String(),
		Address:         d.Address.String(),
		Amount:          d.Amount.String(),
		Images:          images,
	}, nil
}
