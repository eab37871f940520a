package book_mandap

import bookMandap "github.com/m04kA/SMC-CitizenClient/internal/usecase/book_mandap"

// BookMandapRequest HTTP request model
type BookMandapRequest struct {
	Occasion           string `json:"occasion"`
	NumberOfPeople     string `json:"number_of_people"`
	StartDatetime      string `json:"start_datetime"` // "2025-06-15T18:00:00"
	EndDatetime        string `json:"end_datetime"`
	Duration           string `json:"duration"` // в часах
	AdditionalRequests string `json:"additional_requests,omitempty"`
}

// BookMandapResponse HTTP response model
type BookMandapResponse struct {
	Message string            `json:"message"`
	Booking map[string]string `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookMandapRequest) ToUseCaseRequest(mandapID string) *bookMandap.Request {
	return &bookMandap.Request{
		MandapID:           mandapID,
		Occasion:           r.Occasion,
		NumberOfPeople:     r.NumberOfPeople,
		StartDatetime:      r.StartDatetime,
		EndDatetime:        r.EndDatetime,
		Duration:           r.Duration,
		AdditionalRequests: r.AdditionalRequests,
	}
}
