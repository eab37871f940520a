package password_reset

// OTPRequest HTTP request model для отправки и проверки кода
type OTPRequest struct {
	Email     string `json:"email"`
	SecretKey string `json:"secret_key,omitempty"`
	OTP       string `json:"otp,omitempty"`
}

// OTPSentResponse HTTP response model
type OTPSentResponse struct {
	Message   string `json:"message"`
	SecretKey string `json:"secret_key"`
}
