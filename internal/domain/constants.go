package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // YYYY-MM-DDTHH:MM:SS
)

// ActiveStatuses статусы, которые показываются на вкладке активных заявок
var ActiveStatuses = []string{"pending", "scheduled"}

// PastStatuses статусы завершённых заявок
var PastStatuses = []string{"completed", "approved"}

// Limits
const (
	MaxImagesPerRequest = 5
	OTPLength           = 6
	MinPasswordLength   = 8
	ContactNumberLength = 10

	// OtherComplaintSubcategoryID подкатегория, которую сервер ожидает для категории "Other"
	OtherComplaintSubcategoryID = "49"
)

// Значения полей, которые ожидает сервер
const (
	WasteTypePublic  = "Public Waste"
	WasteTypePrivate = "Private Waste"

	PaymentMethodOnline = "Online"
	PaymentMethodNone   = "0"

	OTPVerifiedMessage = "OTP verified successfully"
)

// UrgencyLevels допустимые уровни срочности для септика
var UrgencyLevels = []string{"High", "Medium", "Low"}
