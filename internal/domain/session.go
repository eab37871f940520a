package domain

import "strings"

// Session локальная сессия пользователя
type Session struct {
	Access       string
	Refresh      string
	FirstName    string
	LastName     string
	Email        string
	UserID       string
	JustLoggedIn bool
}

// IsAuthenticated есть ли токен доступа
func (s *Session) IsAuthenticated() bool {
	return s.Access != ""
}

// DisplayName имя для приветствия
func (s *Session) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return s.Email
	}
	return name
}

// Profile данные аккаунта
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	DOB       string
	Address   string
	Pincode   string
}
