package get_session

import "github.com/m04kA/SMC-CitizenClient/internal/domain"

// SessionResponse HTTP response model
type SessionResponse struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	UserID            string `json:"user_id"`
	DisplayName       string `json:"display_name"`
	NotificationsOpen bool   `json:"notifications_open"`
}

// FromDomain конвертирует сессию в HTTP response
func FromDomain(s *domain.Session, notificationsOpen bool) *SessionResponse {
	return &SessionResponse{
		FirstName:         s.FirstName,
		LastName:          s.LastName,
		Email:             s.Email,
		UserID:            s.UserID,
		DisplayName:       s.DisplayName(),
		NotificationsOpen: notificationsOpen,
	}
}
