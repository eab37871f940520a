package notifications

import (
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// PairRequest HTTP request model: booking_id и service_type в том виде, в каком их прислал сервер
type PairRequest struct {
	BookingID   types.RawScalar `json:"booking_id"`
	ServiceType types.RawScalar `json:"service_type"`
}

// ToPair конвертирует запрос в пару просмотренного уведомления
func (r *PairRequest) ToPair() domain.SeenPair {
	return domain.SeenPair{BookingID: r.BookingID, ServiceType: r.ServiceType}
}

// SurfaceRequest HTTP request model
type SurfaceRequest struct {
	Open bool `json:"open"`
}

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID            types.RawScalar `json:"id"`
	BookingID     types.RawScalar `json:"booking_id"`
	ServiceType   types.RawScalar `json:"service_type"`
	Category      string          `json:"category"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Title         string          `json:"title"`
	Message       string          `json:"message"`
	CreatedAt     string          `json:"created_at"`
	IsNew         bool            `json:"is_new"`
	Badge         string          `json:"badge,omitempty"`
	Interactive   bool            `json:"interactive"`
}

// SnapshotResponse HTTP response model: новые и ранее просмотренные уведомления
type SnapshotResponse struct {
	New         []NotificationResponse `json:"new"`
	Previous    []NotificationResponse `json:"previous"`
	Unread      int                    `json:"unread"`
	Loading     bool                   `json:"loading"`
	SurfaceOpen bool                   `json:"surface_open"`
	LastError   string                 `json:"last_error,omitempty"`
	UpdatedAt   string                 `json:"updated_at,omitempty"`
}

// DetailsResponse HTTP response model
type DetailsResponse struct {
	BookingID       types.RawScalar `json:"booking_id"`
	ServiceType     types.RawScalar `json:"service_type"`
	CategoryName    string          `json:"category_name"`
	SubcategoryName string          `json:"subcategory_name"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Address         string          `json:"address"`
	Amount          string          `json:"amount"`
	Images          []string        `json:"images"`
	CanPay          bool            `json:"can_pay"`
}

// FromNotification конвертирует уведомление в HTTP response
func FromNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		BookingID:     n.BookingID,
		ServiceType:   n.ServiceType,
		Category:      n.Category,
		Status:        n.Status,
		PaymentStatus: n.PaymentStatus,
		Title:         n.Title,
		Message:       n.Message,
		CreatedAt:     n.CreatedAt,
		IsNew:         n.IsNew,
		Badge:         string(n.Badge()),
		Interactive:   !n.IsTerminal(),
	}
}

// FromSnapshot конвертирует состояние хранилища с фильтром по категории
func FromSnapshot(s notificationsService.Snapshot, category domain.NotificationCategory) *SnapshotResponse {
	fresh, previous := notificationsService.Partition(notificationsService.FilterByCategory(s.Items, category))

	res := &SnapshotResponse{
		New:         toResponses(fresh),
		Previous:    toResponses(previous),
		Unread:      s.Unread,
		Loading:     s.Loading,
		SurfaceOpen: s.SurfaceOpen,
		LastError:   s.LastError,
	}
	if !s.UpdatedAt.IsZero() {
		res.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return res
}

// FromDetails конвертирует детали заявки в HTTP response
func FromDetails(d *domain.NotificationDetails) *DetailsResponse {
	if d == nil {
		return nil
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &DetailsResponse{
		BookingID:       d.BookingID,
		ServiceType:     d.ServiceType,
		CategoryName:    d.CategoryName,
		SubcategoryName: d.SubcategoryName,
		Status:          d.Status,
		Description:     d.Description,
		Location:        d.Location,
		Address:         d.Address,
		Amount:          d.Amount,
		Images:          images,
		CanPay:          d.CanPay(),
	}
}

func toResponses(list []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, 0, len(list))
	for i := range list {
		res = append(res, FromNotification(&list[i]))
	}
	return res
}
