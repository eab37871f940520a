package password_reset

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
	msgResetFailed        = "Password reset failed"
	msgOTPNotVerified     = "Please verify the OTP first"
	msgPasswordReset      = "Password reset successful! Please log in."
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

// SendOTP POST /api/v1/auth/password/otp
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	secret, err := h.service.SendResetOTP(r.Context(), req.Email)
	if err != nil {
		h.logger.Warn("POST /auth/password/otp - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgOTPFailed)
		return
	}

	h.logger.Info("POST /auth/password/otp - OTP sent")
	handlers.RespondJSON(w, http.StatusOK, OTPSentResponse{Message: msgOTPSent, SecretKey: secret})
}

// ResendOTP POST /api/v1/auth/password/otp/resend
func (h *Handler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/otp/resend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResendResetOTP(r.Context(), req.Email, req.SecretKey); err != nil {
		h.logger.Warn("POST /auth/password/otp/resend - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgOTPFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgOTPResent})
}

// VerifyOTP POST /api/v1/auth/password/otp/verify
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.VerifyResetOTP(r.Context(), req.Email, req.SecretKey, req.OTP); err != nil {
		h.logger.Warn("POST /auth/password/otp/verify - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgVerifyFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: domain.OTPVerifiedMessage})
}

// Reset POST /api/v1/auth/password/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/reset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		if errors.Is(err, auth.ErrOTPNotVerified) {
			h.logger.Warn("POST /auth/password/reset - OTP not verified")
			handlers.RespondError(w, http.StatusPreconditionFailed, msgOTPNotVerified)
			return
		}
		h.logger.Warn("POST /auth/password/reset - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgResetFailed)
		return
	}

	h.logger.Info("POST /auth/password/reset - Password updated")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgPasswordReset})
}

// Confirm POST /api/v1/auth/password/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmResetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ConfirmReset(r.Context(), &req); err != nil {
		h.logger.Warn("POST /auth/password/confirm - Failed: %v", err)
		handlers.RespondUpstreamError(w, err, msgResetFailed)
		return
	}

	h.logger.Info("POST /auth/password/confirm - Password updated")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgPasswordReset})
}
