package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

// Service сервис входа, регистрации и восстановления пароля
type Service struct {
	api           AuthAPI
	session       SessionStore
	notifications NotificationsResetter
	logger        Logger

	mu             sync.Mutex
	signupVerified map[string]string
	resetVerified  map[string]bool
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(api AuthAPI, session SessionStore, notifications NotificationsResetter, logger Logger) *Service {
	return &Service{
		api:            api,
		session:        session,
		notifications:  notifications,
		logger:         logger,
		signupVerified: make(map[string]string),
		resetVerified:  make(map[string]bool),
	}
}

// Login выполняет вход и сохраняет ответ сервера в сессию.
// Флаг justLoggedIn открывает панель уведомлений при следующей проверке.
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	email = strings.TrimSpace(email)

	var errs domain.ValidationErrors
	switch {
	case email == "":
		errs.Add("email", "Email is required")
	case !domain.IsValidEmail(email):
		errs.Add("email", "Please enter a valid email address")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.logger.Info("Login: signing in")
	fields, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login: rejected: %v", err)
		return nil, err
	}

	if err := s.session.SaveLogin(ctx, fields); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}
	if err := s.session.MarkJustLoggedIn(ctx); err != nil {
		s.logger.Error("Login: failed to set justLoggedIn: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}

	res := &models.LoginResponse{
		FirstName: fields[session.KeyFirstName],
		LastName:  fields[session.KeyLastName],
		Email:     fields[session.KeyEmail],
		UserID:    fields[session.KeyUserID],
	}
	if res.Email == "" {
		res.Email = email
	}
	if res.UserID == "" {
		if claims, err := session.ParseClaims(fields[session.KeyAccess]); err == nil {
			res.UserID = claims.UserID
		}
	}

	s.logger.Info("Login: signed in user_id=%s", res.UserID)
	return res, nil
}

// Logout выходит из аккаунта. full очищает всё хранилище, иначе удаляются только данные входа.
func (s *Service) Logout(ctx context.Context, full bool) error {
	var err error
	if full {
		err = s.session.Wipe(ctx)
	} else {
		err = s.session.Clear(ctx)
	}
	if err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: Logout - %v", ErrInternal, err)
	}

	s.notifications.Reset()
	s.logger.Info("Logout: done, full=%t", full)
	return nil
}

// SendSignupOTP отправляет код регистрации и возвращает secret_key
func (s *Service) SendSignupOTP(ctx context.Context, email string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}
	secret, err := s.api.SendOTP(ctx, strings.TrimSpace(email))
	if err != nil {
		s.logger.Warn("SendSignupOTP: failed: %v", err)
		return "", err
	}
	return secret, nil
}

// ResendSignupOTP повторно отправляет код регистрации
func (s *Service) ResendSignupOTP(ctx context.Context, email, secretKey string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if secretKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, single("secret_key", "Please request an OTP first"))
	}
	return s.api.ResendOTP(ctx, strings.TrimSpace(email), secretKey)
}

// VerifySignupOTP проверяет код регистрации и запоминает подтверждённый email
func (s *Service) VerifySignupOTP(ctx context.Context, email, secretKey, otp string) error {
	if err := validateOTP(email, secretKey, otp); err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if err := s.api.VerifyOTP(ctx, email, secretKey, otp); err != nil {
		s.logger.Warn("VerifySignupOTP: failed: %v", err)
		return err
	}

	s.mu.Lock()
	s.signupVerified[strings.ToLower(email)] = otp
	s.mu.Unlock()
	return nil
}

// Register регистрирует пользователя. Email должен быть подтверждён через VerifySignupOTP.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return "", err
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))
	s.mu.Lock()
	verifiedOTP, ok := s.signupVerified[key]
	s.mu.Unlock()
	if !ok || verifiedOTP != req.OTP {
		return "", ErrOTPNotVerified
	}

	msg, err := s.api.Register(ctx, citizenapi.RegisterRequest{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		DOB:             req.DOB,
		Address:         strings.TrimSpace(req.Address),
		Pincode:         strings.TrimSpace(req.Pincode),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		SecretKey:       req.SecretKey,
		OTPValue:        req.OTP,
	})
	if err != nil {
		s.logger.Warn("Register: failed: %v", err)
		return "", err
	}

	s.mu.Lock()
	delete(s.signupVerified, key)
	s.mu.Unlock()

	s.logger.Info("Register: account created")
	return msg, nil
}

// SendResetOTP отправляет код сброса пароля и возвращает secret_key
func (s *Service) SendResetOTP(ctx context.Context, email string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}
	secret, err := s.api.SendPasswordResetOTP(ctx, strings.TrimSpace(email))
	if err != nil {
		s.logger.Warn("SendResetOTP: failed: %v", err)
		return "", err
	}
	return secret, nil
}

// ResendResetOTP повторно отправляет код сброса пароля
func (s *Service) ResendResetOTP(ctx context.Context, email, secretKey string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if secretKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, single("secret_key", "Please request an OTP first"))
	}
	return s.api.ResendPasswordResetOTP(ctx, strings.TrimSpace(email), secretKey)
}

// VerifyResetOTP проверяет код сброса пароля
func (s *Service) VerifyResetOTP(ctx context.Context, email, secretKey, otp string) error {
	if err := validateOTP(email, secretKey, otp); err != nil {
		return err
	}
	if err := s.api.VerifyPasswordResetOTP(ctx, secretKey, otp); err != nil {
		s.logger.Warn("VerifyResetOTP: failed: %v", err)
		return err
	}

	s.mu.Lock()
	s.resetVerified[strings.ToLower(strings.TrimSpace(email))] = true
	s.mu.Unlock()
	return nil
}

// ResetPassword устанавливает новый пароль после VerifyResetOTP
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	var errs domain.ValidationErrors
	if !domain.IsValidEmail(req.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	addPasswordErrors(&errs, req.Password, req.ConfirmPassword)
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))
	s.mu.Lock()
	verified := s.resetVerified[key]
	s.mu.Unlock()
	if !verified {
		return ErrOTPNotVerified
	}

	if err := s.api.ResetPassword(ctx, strings.TrimSpace(req.Email), req.Password); err != nil {
		s.logger.Warn("ResetPassword: failed: %v", err)
		return err
	}

	s.mu.Lock()
	delete(s.resetVerified, key)
	s.mu.Unlock()

	s.logger.Info("ResetPassword: password updated")
	return nil
}

// ConfirmReset устанавливает новый пароль по uid и token из письма
func (s *Service) ConfirmReset(ctx context.Context, req *models.ConfirmResetRequest) error {
	var errs domain.ValidationErrors
	if req.UID == "" || req.Token == "" {
		errs.Add("token", "Invalid or expired reset link")
	}
	addPasswordErrors(&errs, req.Password, req.ConfirmPassword)
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.api.ConfirmPasswordReset(ctx, req.UID, req.Token, req.Password); err != nil {
		s.logger.Warn("ConfirmReset: failed: %v", err)
		return err
	}
	return nil
}

func validateEmail(email string) error {
	if !domain.IsValidEmail(email) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, single("email", "Please enter a valid email address"))
	}
	return nil
}

func validateOTP(email, secretKey, otp string) error {
	var errs domain.ValidationErrors
	if !domain.IsValidEmail(email) {
		errs.Add("email", "Please enter a valid email address")
	}
	if secretKey == "" {
		errs.Add("secret_key", "Please request an OTP first")
	}
	if !domain.IsOTP(otp) {
		errs.Add("otp", "Please enter the 6-digit OTP")
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func validateRegister(req *models.RegisterRequest) error {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.FirstName) == "" {
		errs.Add("first_name", "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs.Add("last_name", "Last name is required")
	}
	if !domain.IsDate(req.DOB) {
		errs.Add("dob", "Date of birth must be in the format YYYY-MM-DD")
	}
	if strings.TrimSpace(req.Address) == "" {
		errs.Add("address", "Address is required")
	}
	if !domain.IsDigits(strings.TrimSpace(req.Pincode)) {
		errs.Add("pincode", "Pincode must contain only digits")
	}
	if !domain.IsValidEmail(req.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	if req.SecretKey == "" {
		errs.Add("secret_key", "Please verify your email first")
	}
	if !domain.IsOTP(req.OTP) {
		errs.Add("otp", "Please enter the 6-digit OTP")
	}
	addPasswordErrors(&errs, req.Password, req.ConfirmPassword)
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func addPasswordErrors(errs *domain.ValidationErrors, password, confirm string) {
	for _, problem := range domain.PasswordProblems(password) {
		errs.Add("password", problem)
	}
	if password != confirm {
		errs.Add("confirm_password", "Passwords do not match")
	}
}

func single(field, message string) domain.ValidationErrors {
	return domain.ValidationErrors{{Field: field, Message: message}}
}
