package citizenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// ListBookings получает заявки пользователя.
// Сервер отвечает либо массивом, либо объектом с массивами по видам заявок;
// во втором случае массивы склеиваются в порядке waste, mandap, pollution, complaints, cesspool.
func (c *Client) ListBookings(ctx context.Context, token string, tab domain.BookingTab, typeFilter string) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("status", tab.APIStatus())
	if typeFilter != "" {
		query.Set("type", typeFilter)
	}

	body, err := c.send(ctx, request{
		endpoint: "bookings.list",
		method:   http.MethodGet,
		path:     "/api/user/bookings/",
		query:    query,
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	records, err := decodeBookingList(body)
	if err != nil {
		return nil, fmt.Errorf("%w: bookings.list - %v", ErrInvalidResponse, err)
	}

	res := make([]*domain.Booking, 0, len(records))
	for i := range records {
		res = append(res, c.toDomainBooking(&records[i]))
	}
	return res, nil
}

func decodeBookingList(body []byte) ([]BookingRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []BookingRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var agg bookingsAggregate
	if err := json.Unmarshal(trimmed, &agg); err != nil {
		return nil, err
	}
	var records []BookingRecord
	records = append(records, agg.WasteBookings...)
	records = append(records, agg.MandapBookings...)
	records = append(records, agg.PollutionBookings...)
	records = append(records, agg.ComplaintsBookings...)
	records = append(records, agg.CesspoolBookings...)
	return records, nil
}

// GetBooking получает заявку по виду и идентификатору
func (c *Client) GetBooking(ctx context.Context, token, serviceType, id string) (*domain.Booking, error) {
	query := url.Values{}
	query.Set("service_type", serviceType)
	query.Set("id", id)

	var record BookingRecord
	err := c.doJSON(ctx, request{
		endpoint: "bookings.get",
		method:   http.MethodGet,
		path:     "/api/user/eachbooking/",
		query:    query,
		token:    token,
	}, &record)
	if err != nil {
		return nil, err
	}
	if len(record.Fields) == 0 {
		return nil, fmt.Errorf("%w: bookings.get - empty booking", ErrNotFound)
	}
	return c.toDomainBooking(&record), nil
}

func (c *Client) toDomainBooking(record *BookingRecord) *domain.Booking {
	kind := domain.ClassifyBooking(record.Fields["mandap_name"], record.Fields["service_type"])
	raw := record.ImagesOf(kind.ImagesField())
	images := make([]string, 0, len(raw))
	for _, img := range raw {
		images = append(images, c.AbsoluteURL(img))
	}
	return domain.NewBooking(record.Fields, images)
}
