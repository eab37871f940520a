package citizenapi

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

// LoginRequest тело /api/auth/login/
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest тело /api/auth/register/
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	DOB             string `json:"dob"`
	Address         string `json:"address"`
	Pincode         string `json:"pincode"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	SecretKey       string `json:"secret_key"`
	OTPValue        string `json:"otpValue"`
}

// messageResponse типичный ответ auth-эндпоинтов
type messageResponse struct {
	Message   types.FlexString `json:"message"`
	Detail    types.FlexString `json:"detail"`
	SecretKey types.FlexString `json:"secret_key"`
}

func (m *messageResponse) text() string {
	if m.Message != "" {
		return m.Message.String()
	}
	return m.Detail.String()
}

// AccountDetails данные аккаунта
type AccountDetails struct {
	FirstName types.FlexString `json:"first_name"`
	LastName  types.FlexString `json:"last_name"`
	Email     types.FlexString `json:"email"`
	DOB       types.FlexString `json:"dob"`
	Address   types.FlexString `json:"address"`
	Pincode   types.FlexString `json:"pincode"`
}

type accountResponse struct {
	UserDetails AccountDetails `json:"userDetails"`
}

// UpdateAccountRequest тело /api/updateaccount-details/
type UpdateAccountRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
}

// BookingRecord запись заявки: все скалярные поля в строковом виде и изображения по полям
type BookingRecord struct {
	Fields    map[string]string
	rawImages map[string][]string
}

// imageFields поля ответа, в которых приходят изображения
var imageFields = []string{
	"kalyanmandap_images",
	"mandap_images",
	"complaint_images",
	"pollution_images",
	"cesspool_images",
	"request_images",
}

func (b *BookingRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	images := map[string][]string{}
	for _, field := range imageFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		var refs []ImageRef
		if err := json.Unmarshal(value, &refs); err == nil {
			for _, ref := range refs {
				if ref != "" {
					images[field] = append(images[field], string(ref))
				}
			}
		}
		delete(raw, field)
	}
	b.Fields = flatten(raw)
	b.rawImages = images
	return nil
}

// ImagesOf изображения из указанного поля
func (b *BookingRecord) ImagesOf(field string) []string {
	return b.rawImages[field]
}

// ImageRef ссылка на изображение: строка или объект {"image": "..."}
type ImageRef string

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Image types.FlexString `json:"image"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = ImageRef(obj.Image)
		return nil
	}
	var s types.FlexString
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ImageRef(s)
	return nil
}

// bookingsAggregate ответ /api/user/bookings/ в виде объекта по видам заявок
type bookingsAggregate struct {
	WasteBookings      []BookingRecord `json:"waste_bookings"`
	MandapBookings     []BookingRecord `json:"mandap_bookings"`
	PollutionBookings  []BookingRecord `json:"pollution_bookings"`
	ComplaintsBookings []BookingRecord `json:"complaints_bookings"`
	CesspoolBookings   []BookingRecord `json:"cesspool_bookings"`
}

// Notification уведомление в формате сервера
type Notification struct {
	ID            types.RawScalar  `json:"id"`
	BookingID     types.RawScalar  `json:"booking_id"`
	ServiceType   types.RawScalar  `json:"service_type"`
	Category      types.FlexString `json:"category"`
	Status        types.FlexString `json:"status"`
	PaymentStatus types.FlexString `json:"payment_status"`
	Title         types.FlexString `json:"title"`
	Message       types.FlexString `json:"message"`
	CreatedAt     types.FlexString `json:"created_at"`
}

// NotificationDetails детали заявки по уведомлению
type NotificationDetails struct {
	BookingID       types.RawScalar  `json:"booking_id"`
	ServiceType     types.RawScalar  `json:"service_type"`
	CategoryName    types.FlexString `json:"category_name"`
	SubcategoryName types.FlexString `json:"subcategory_name"`
	Status          types.FlexString `json:"status"`
	Description     types.FlexString `json:"description"`
	Location        types.FlexString `json:"location"`
	Address         types.FlexString `json:"address"`
	Amount          types.FlexString `json:"amount"`
	ComplaintImages []ImageRef       `json:"complaint_images"`
}

type notificationDetailsResponse struct {
	Data *NotificationDetails `json:"data"`
}

// actionResponse ответ эндпоинтов оплаты
type actionResponse struct {
	StatusCode types.FlexString `json:"status_code"`
	Status     types.FlexString `json:"status"`
	Message    types.FlexString `json:"message"`
}

func (a *actionResponse) succeeded() bool {
	return a.StatusCode == "200" && a.Status == "true"
}

// Mandap зал из каталога
type Mandap struct {
	ID                 types.FlexString `json:"id"`
	Name               types.FlexString `json:"mandap_name"`
	Description        types.FlexString `json:"mandap_description"`
	Address            types.FlexString `json:"mandap_address"`
	ContactNumber      types.FlexString `json:"mandap_contact_number"`
	Capacity           types.FlexString `json:"mandap_capacity"`
	Amenities          types.FlexString `json:"mandap_amenities"`
	MinimumBookingUnit types.FlexString `json:"mandap_minimum_booking_unit"`
	PriceRange         types.FlexString `json:"mandap_price_range"`
	PriceNote          types.FlexString `json:"mandap_price_note"`
	Images             []ImageRef       `json:"mandap_images"`
}

// BookMandapRequest тело /api/event_klm/book/
type BookMandapRequest struct {
	Kalyanmandap       string `json:"kalyanmandap"`
	Occasion           string `json:"occasion"`
	NumberOfPeople     string `json:"number_of_people"`
	StartDatetime      string `json:"start_datetime"`
	EndDatetime        string `json:"end_datetime"`
	Duration           string `json:"duration"`
	AdditionalRequests string `json:"additional_requests"`
	PaymentMethod      string `json:"payment_method"`
}

// Category категория жалоб или загрязнений
type Category struct {
	ID            types.FlexString `json:"id"`
	Name          types.FlexString `json:"name"`
	Subcategories []Subcategory    `json:"subcategories"`
}

// Subcategory подкатегория
type Subcategory struct {
	ID   types.FlexString `json:"id"`
	Name types.FlexString `json:"name"`
}

// Complaint жалоба пользователя
type Complaint struct {
	ID              types.FlexString `json:"id"`
	CategoryName    types.FlexString `json:"category_name"`
	SubcategoryName types.FlexString `json:"subcategory_name"`
	Description     types.FlexString `json:"description"`
	Status          types.FlexString `json:"status"`
	CreatedAt       types.FlexString `json:"created_at"`
}
