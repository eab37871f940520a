package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
)

// IsValidEmail упрощённая проверка адреса: что-то@что-то.что-то
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsDigits строка непустая и состоит только из цифр
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// IsContactNumber номер телефона из 10 цифр
func IsContactNumber(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == ContactNumberLength && IsDigits(s)
}

// IsOTP код подтверждения из 6 цифр
func IsOTP(s string) bool {
	return len(s) == OTPLength && IsDigits(s)
}

// IsDate дата в формате YYYY-MM-DD
func IsDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// IsDateTime дата и время в формате YYYY-MM-DDTHH:MM:SS
func IsDateTime(s string) bool {
	_, err := time.Parse(DateTimeFormat, s)
	return err == nil
}

// PasswordProblems список нарушений требований к паролю. Пустой список: пароль подходит.
func PasswordProblems(password string) []string {
	var problems []string
	if len(password) < MinPasswordLength {
		problems = append(problems, "Password must be at least 8 characters long")
	}
	if !lowerPattern.MatchString(password) {
		problems = append(problems, "Password must contain a lowercase letter")
	}
	if !upperPattern.MatchString(password) {
		problems = append(problems, "Password must contain an uppercase letter")
	}
	if !digitPattern.MatchString(password) {
		problems = append(problems, "Password must contain a number")
	}
	if !specialPattern.MatchString(password) {
		problems = append(problems, "Password must contain a special character")
	}
	return problems
}

// FieldError ошибка проверки одного поля формы
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors ошибки проверки формы в порядке обнаружения
type ValidationErrors []FieldError

// Add добавляет ошибку поля
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err nil, если ошибок нет
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Messages сообщения для пользователя в порядке обнаружения
func (v ValidationErrors) Messages() []string {
	res := make([]string, 0, len(v))
	for _, e := range v {
		res = append(res, e.Message)
	}
	return res
}

// Fields сообщения, сгруппированные по полям
func (v ValidationErrors) Fields() map[string][]string {
	res := make(map[string][]string, len(v))
	for _, e := range v {
		res[e.Field] = append(res[e.Field], e.Message)
	}
	return res
}
