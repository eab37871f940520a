package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/service/auth"
	"github.com/m04kA/SMC-CitizenClient/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgOTPSent            = "OTP sent to your email"
	msgOTPResent          = "OTP resent to your email"
	msgOTPFailed          = "Failed to send OTP"
	msgVerifyFailed       = "OTP verification failed"
	msgRegisterFailed     = "Registration failed"
	msgOTPNotVerified     = "Please verify your email with the OTP first"
	msgRegistered         = "Registration successful! Please log in."
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SendOTP POST /api/v1/auth/signup/otp
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup/otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	secret, err := h.service.SendSignupOTP(r.Context(), req.Email)
	if err != nil {
		h.logger.Warn("POST /auth/signup/otp - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgOTPFailed)
		return
	}

	h.logger.Info("POST /auth/signup/otp - OTP sent")
	handlers.RespondJSON(w, http.StatusOK, OTPSentResponse{Message: msgOTPSent, SecretKey: secret})
}

// ResendOTP POST /api/v1/auth/signup/otp/resend
func (h *Handler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup/otp/resend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResendSignupOTP(r.Context(), req.Email, req.SecretKey); err != nil {
		h.logger.Warn("POST /auth/signup/otp/resend - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgOTPFailed)
		return
	}

	h.logger.Info("POST /auth/signup/otp/resend - OTP resent")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgOTPResent})
}

// VerifyOTP POST /api/v1/auth/signup/otp/verify
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup/otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.VerifySignupOTP(r.Context(), req.Email, req.SecretKey, req.OTP); err != nil {
		h.logger.Warn("POST /auth/signup/otp/verify - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgVerifyFailed)
		return
	}

	h.logger.Info("POST /auth/signup/otp/verify - Email verified")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: domain.OTPVerifiedMessage})
}

// Register POST /api/v1/auth/signup
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotVerified) {
			h.logger.Warn("POST /auth/signup - OTP not verified")
			handlers.RespondError(w, http.StatusPreconditionFailed, msgOTPNotVerified)
			return
		}
		h.logger.Warn("POST /auth/signup - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgRegisterFailed)
		return
	}

	if msg == "" {
		msg = msgRegistered
	}
	h.logger.Info("POST /auth/signup - Account created")
	handlers.RespondJSON(w, http.StatusCreated, handlers.MessageResponse{Message: msg})
}
