package models

// RegisterRequest форма регистрации
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	DOB             string `json:"dob"`
	Address         string `json:"address"`
	Pincode         string `json:"pincode"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	SecretKey       string `json:"secret_key"`
	OTP             string `json:"otp"`
}

// ResetPasswordRequest новый пароль после проверки OTP
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ConfirmResetRequest новый пароль по ссылке из письма
type ConfirmResetRequest struct {
	UID             string `json:"uid"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginResponse результат входа
type LoginResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
}
