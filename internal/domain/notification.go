package domain

import (
	"strings"

	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// NotificationCategory категория для фильтра списка уведомлений
type NotificationCategory string

const (
	CategoryAll       NotificationCategory = "all"
	CategoryPayment   NotificationCategory = "payment"
	CategoryBooking   NotificationCategory = "booking"
	CategoryPromo     NotificationCategory = "promo"
	CategoryPromotion NotificationCategory = "promotion"
)

// NotificationCategories допустимые значения фильтра
var NotificationCategories = []NotificationCategory{
	CategoryAll,
	CategoryPayment,
	CategoryBooking,
	CategoryPromo,
	CategoryPromotion,
}

// Badge метка завершённого уведомления
type Badge string

const (
	BadgeNone      Badge = ""
	BadgePaid      Badge = "PAID"
	BadgeRejected  Badge = "REJECTED"
	BadgeCompleted Badge = "COMPLETED"
)

// Notification уведомление пользователя.
// BookingID и ServiceType хранятся в исходном JSON-виде: пара сравнивается строго, без приведения типов.
type Notification struct {
	ID            types.RawScalar
	BookingID     types.RawScalar
	ServiceType   types.RawScalar
	Category      string
	Status        string
	PaymentStatus string
	Title         string
	Message       string
	CreatedAt     string
	IsNew         bool
}

// SeenPair идентификатор просмотренного уведомления
type SeenPair struct {
	BookingID   types.RawScalar `json:"booking_id,omitempty"`
	ServiceType types.RawScalar `json:"service_type,omitempty"`
}

// Pair пара, по которой уведомление сопоставляется с просмотренными
func (n *Notification) Pair() SeenPair {
	return SeenPair{BookingID: n.BookingID, ServiceType: n.ServiceType}
}

// DetailsBookingID booking_id для запроса деталей, id если booking_id пустой
func (n *Notification) DetailsBookingID() types.RawScalar {
	return n.BookingID.Or(n.ID)
}

func (n *Notification) IsPaid() bool {
	return strings.ToLower(n.PaymentStatus) == "completed"
}

func (n *Notification) IsRejected() bool {
	return strings.ToLower(n.PaymentStatus) == "rejected"
}

func (n *Notification) IsComplaintCompleted() bool {
	return n.ServiceType.String() == "complaints" && n.Category == string(CategoryBooking) && n.Status == "completed"
}

// IsTerminal оплаченное, отклонённое или закрытое уведомление: открыть его нельзя
func (n *Notification) IsTerminal() bool {
	return n.IsPaid() || n.IsRejected() || n.IsComplaintCompleted()
}

// Badge метка для карточки
func (n *Notification) Badge() Badge {
	switch {
	case n.IsPaid():
		return BadgePaid
	case n.IsRejected():
		return BadgeRejected
	case n.IsComplaintCompleted():
		return BadgeCompleted
	default:
		return BadgeNone
	}
}

// MatchesCategory проверяет фильтр категории
func (n *Notification) MatchesCategory(category NotificationCategory) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return strings.EqualFold(n.Category, string(category))
}

// SeenSet упорядоченное множество просмотренных пар без повторов
type SeenSet []SeenPair

// Contains строгая проверка вхождения
func (s SeenSet) Contains(p SeenPair) bool {
	for _, seen := range s {
		if seen == p {
			return true
		}
	}
	return false
}

// Add добавляет пару, если её ещё нет. Второй результат false, если пара уже была.
func (s SeenSet) Add(p SeenPair) (SeenSet, bool) {
	if s.Contains(p) {
		return s, false
	}
	return append(s, p), true
}

// NotificationDetails детали заявки, на которую ссылается уведомление
type NotificationDetails struct {
	BookingID       types.RawScalar
	ServiceType     types.RawScalar
	CategoryName    string
	SubcategoryName string
	Status          string
	Description     string
	Location        string
	Address         string
	Amount          string
	Images          []string
}

// CanPay оплатить можно, пока заявка не завершена
func (d *NotificationDetails) CanPay() bool {
	return d.Status != "completed"
}
