package domain

import (
	"strings"
)

// BookingKind вид заявки, определяется один раз при разборе ответа сервера
type BookingKind string

const (
	KindMandap     BookingKind = "mandap"
	KindWaste      BookingKind = "waste"
	KindPollution  BookingKind = "pollution"
	KindComplaints BookingKind = "complaints"
	KindCesspool   BookingKind = "cesspool"
	KindOther      BookingKind = "other"
)

// BookingTab вкладка списка заявок
type BookingTab string

const (
	TabActive BookingTab = "active"
	TabPast   BookingTab = "past"
)

// APIStatus значение параметра status для /api/user/bookings/
func (t BookingTab) APIStatus() string {
	if t == TabPast {
		return "notactive"
	}
	return "active"
}

// ClassifyBooking определяет вид заявки по mandap_name и service_type.
// Непустой mandap_name важнее service_type.
func ClassifyBooking(mandapName, serviceType string) BookingKind {
	if mandapName != "" {
		return KindMandap
	}

	st := strings.ToLower(serviceType)
	switch {
	case strings.Contains(st, "waste"):
		return KindWaste
	case strings.Contains(st, "pollution"):
		return KindPollution
	case st == "cesspool":
		return KindCesspool
	case st == "complaint" || st == "complaints":
		return KindComplaints
	default:
		return KindOther
	}
}

// Title заголовок заявки для отображения
func (k BookingKind) Title(serviceType string) string {
	switch k {
	case KindMandap:
		return "Kalyan Mandap Booking"
	case KindWaste:
		return "Waste Management"
	case KindPollution:
		return "Pollution Report"
	case KindComplaints:
		return "Complaint"
	case KindCesspool:
		return "Cesspool Service"
	default:
		if serviceType != "" {
			return serviceType
		}
		return "Misc"
	}
}

// ImagesField поле ответа, в котором сервер присылает изображения заявки
func (k BookingKind) ImagesField() string {
	switch k {
	case KindMandap:
		return "kalyanmandap_images"
	case KindComplaints:
		return "complaint_images"
	case KindPollution:
		return "pollution_images"
	case KindCesspool:
		return "cesspool_images"
	default:
		return "request_images"
	}
}

// Booking заявка пользователя любого вида.
// Fields содержит все скалярные поля записи в строковом виде, Details типизированную часть по виду.
type Booking struct {
	ID            string
	Kind          BookingKind
	Title         string
	ServiceType   string
	Status        string
	PaymentStatus string
	PaymentMethod string
	Comment       string
	CreatedAt     string
	Images        []string
	Details       BookingDetails
	Fields        map[string]string
}

// BookingDetails типизированная часть заявки
type BookingDetails interface {
	Kind() BookingKind
}

// MandapDetails бронирование зала
type MandapDetails struct {
	MandapName         string
	Description        string
	Address            string
	ContactNumber      string
	Capacity           string
	Amenities          string
	MinimumBookingUnit string
	PriceNote          string
	Occasion           string
	NumberOfPeople     string
	StartDatetime      string
	EndDatetime        string
	Duration           string
	AdditionalRequests string
}

func (MandapDetails) Kind() BookingKind { return KindMandap }

// WasteDetails заявка на вывоз мусора
type WasteDetails struct {
	Type          string
	WasteType     string
	Description   string
	Location      string
	Address       string
	ContactNumber string
	TimeSlot      string
	UserName      string
}

func (WasteDetails) Kind() BookingKind { return KindWaste }

// PollutionDetails сообщение о загрязнении
type PollutionDetails struct {
	Type         string
	TypeName     string
	CategoryName string
	Description  string
	Location     string
	Address      string
}

func (PollutionDetails) Kind() BookingKind { return KindPollution }

// ComplaintDetails жалоба
type ComplaintDetails struct {
	CategoryName    string
	SubcategoryName string
	Description     string
	Location        string
	Address         string
}

func (ComplaintDetails) Kind() BookingKind { return KindComplaints }

// CesspoolDetails заявка на откачку септика
type CesspoolDetails struct {
	Name              string
	ContactNumber     string
	Location          string
	Address           string
	Description       string
	WasteTankType     string
	Capacity          string
	UrgencyLevel      string
	PreferredDatetime string
	AccessibilityNote string
}

func (CesspoolDetails) Kind() BookingKind { return KindCesspool }

// OtherDetails заявка неизвестного вида, поля отдаются как есть
type OtherDetails struct {
	Label string
}

func (OtherDetails) Kind() BookingKind { return KindOther }

// SearchFields поля, по которым ищет строка поиска в списке заявок
var SearchFields = []string{
	"mandap_name",
	"occasion",
	"waste_type",
	"type",
	"category_name",
	"description",
	"location",
	"address",
	"service_type",
}

// NewBooking собирает заявку из плоского набора полей записи
func NewBooking(fields map[string]string, images []string) *Booking {
	if fields == nil {
		fields = map[string]string{}
	}
	get := func(key string) string { return fields[key] }

	kind := ClassifyBooking(get("mandap_name"), get("service_type"))
	b := &Booking{
		ID:            get("id"),
		Kind:          kind,
		Title:         kind.Title(get("service_type")),
		ServiceType:   get("service_type"),
		Status:        get("status"),
		PaymentStatus: get("payment_status"),
		PaymentMethod: get("payment_method"),
		Comment:       get("comment"),
		CreatedAt:     get("created_at"),
		Images:        images,
		Fields:        fields,
	}

	switch kind {
	case KindMandap:
		b.Details = MandapDetails{
			MandapName:         get("mandap_name"),
			Description:        firstNonEmpty(get("mandap_description"), get("description")),
			Address:            firstNonEmpty(get("mandap_address"), get("address")),
			ContactNumber:      firstNonEmpty(get("mandap_contact_number"), get("contact_number")),
			Capacity:           firstNonEmpty(get("mandap_capacity"), get("capacity")),
			Amenities:          firstNonEmpty(get("mandap_amenities"), get("amenities")),
			MinimumBookingUnit: firstNonEmpty(get("mandap_minimum_booking_unit"), get("minimum_booking_unit")),
			PriceNote:          firstNonEmpty(get("mandap_price_note"), get("price_note")),
			Occasion:           get("occasion"),
			NumberOfPeople:     get("number_of_people"),
			StartDatetime:      get("start_datetime"),
			EndDatetime:        get("end_datetime"),
			Duration:           get("duration"),
			AdditionalRequests: get("additional_requests"),
		}
	case KindWaste:
		b.Details = WasteDetails{
			Type:          get("type"),
			WasteType:     get("waste_type"),
			Description:   get("description"),
			Location:      get("location"),
			Address:       get("address"),
			ContactNumber: get("contact_number"),
			TimeSlot:      get("time_slot"),
			UserName:      get("user_name"),
		}
	case KindPollution:
		b.Details = PollutionDetails{
			Type:         get("type"),
			TypeName:     get("type_name"),
			CategoryName: get("category_name"),
			Description:  get("description"),
			Location:     get("location"),
			Address:      get("address"),
		}
	case KindComplaints:
		b.Details = ComplaintDetails{
			CategoryName:    get("category_name"),
			SubcategoryName: get("subcategory_name"),
			Description:     get("description"),
			Location:        get("location"),
			Address:         get("address"),
		}
	case KindCesspool:
		b.Details = CesspoolDetails{
			Name:              get("name"),
			ContactNumber:     get("contact_number"),
			Location:          get("location"),
			Address:           get("address"),
			Description:       get("description"),
			WasteTankType:     get("waste_tank_type"),
			Capacity:          get("capacity"),
			UrgencyLevel:      get("urgency_level"),
			PreferredDatetime: get("preferred_datetime"),
			AccessibilityNote: get("accessibility_note"),
		}
	default:
		b.Details = OtherDetails{Label: b.Title}
	}

	return b
}

// Matches проверяет вхождение строки поиска без учёта регистра
func (b *Booking) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, key := range SearchFields {
		if strings.Contains(strings.ToLower(b.Fields[key]), q) {
			return true
		}
	}
	return false
}

// MatchesType применяет фильтр по виду заявки из списка
func (b *Booking) MatchesType(filter string) bool {
	st := strings.ToLower(b.ServiceType)
	switch strings.ToLower(filter) {
	case "", "all":
		return true
	case "mandap", "kalyanmandap":
		return b.Fields["mandap_name"] != ""
	case "waste":
		return strings.Contains(st, "waste")
	case "pollution":
		return strings.Contains(st, "pollution")
	case "complaints", "complaint":
		return st == "complaint" || st == "complaints"
	case "cesspool":
		return st == "cesspool"
	case "misc":
		return b.ServiceType == "misc"
	default:
		return false
	}
}

// IsActive статус относится к вкладке активных заявок
func (b *Booking) IsActive() bool {
	status := strings.ToLower(b.Status)
	for _, s := range ActiveStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
