package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// BookingTypeFilters допустимые значения фильтра по виду заявки
var BookingTypeFilters = []string{"all", "mandap", "kalyanmandap", "waste", "pollution", "complaints", "cesspool", "misc"}

// ListBookingsRequest запрос списка заявок
type ListBookingsRequest struct {
	Tab    domain.BookingTab
	Type   string
	Search string
}

// Validate проверяет вкладку и фильтр
func (r *ListBookingsRequest) Validate() error {
	switch r.Tab {
	case domain.TabActive, domain.TabPast:
	default:
		return fmt.Errorf("unknown tab %q", r.Tab)
	}
	if r.Type == "" {
		return nil
	}
	for _, f := range BookingTypeFilters {
		if strings.EqualFold(f, r.Type) {
			return nil
		}
	}
	return fmt.Errorf("unknown booking type %q", r.Type)
}

// APIType значение параметра type для сервера: "all" не передаётся
func (r *ListBookingsRequest) APIType() string {
	if strings.EqualFold(r.Type, "all") {
		return ""
	}
	return strings.ToLower(r.Type)
}

// ComplaintsResponse жалобы пользователя, разделённые по статусу
type ComplaintsResponse struct {
	Pending  []*domain.Complaint
	Resolved []*domain.Complaint
}

// BookingResponse заявка в ответе API шлюза
type BookingResponse struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	Title         string            `json:"title"`
	ServiceType   string            `json:"service_type"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Comment       string            `json:"comment,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
	Images        []string          `json:"images"`
	Fields        map[string]string `json:"fields"`
}

// FromDomain конвертирует заявку в модель ответа
func FromDomain(b *domain.Booking) *BookingResponse {
	images := b.Images
	if images == nil {
		images = []string{}
	}
	return &BookingResponse{
		ID:            b.ID,
		Kind:          string(b.Kind),
		Title:         b.Title,
		ServiceType:   b.ServiceType,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		PaymentMethod: b.PaymentMethod,
		Comment:       b.Comment,
		CreatedAt:     b.CreatedAt,
		Images:        images,
		Fields:        b.Fields,
	}
}

// FromDomainList конвертирует список заявок
func FromDomainList(list []*domain.Booking) []*BookingResponse {
	res := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		res = append(res, FromDomain(b))
	}
	return res
}
