package payment_action

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// UseCase use case для подтверждения и отклонения оплаты из уведомления
type UseCase struct {
	api           PaymentAPI
	notifications NotificationsRefresher
	tokens        TokenProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(api PaymentAPI, notifications NotificationsRefresher, tokens TokenProvider, logger Logger) *UseCase {
	return &UseCase{
		api:           api,
		notifications: notifications,
		tokens:        tokens,
		logger:        logger,
	}
}

// Pay отмечает заявку оплаченной
func (uc *UseCase) Pay(ctx context.Context, pair domain.SeenPair) (*Response, error) {
	uc.logger.Info("Pay: booking_id=%s, service_type=%s", pair.BookingID, pair.ServiceType)

	token, err := uc.prepare(ctx, pair)
	if err != nil {
		return nil, err
	}

	if err := uc.api.ConfirmPayment(ctx, token, pair.BookingID, pair.ServiceType); err != nil {
		uc.logger.Warn("Pay: booking_id=%s failed: %v", pair.BookingID, err)
		return nil, err
	}

	uc.logger.Info("Pay: booking_id=%s paid", pair.BookingID)
	return uc.complete(ctx, token, pair, MsgPaid), nil
}

// Reject отклоняет оплату с причиной
func (uc *UseCase) Reject(ctx context.Context, pair domain.SeenPair, reason string) (*Response, error) {
	uc.logger.Info("Reject: booking_id=%s, service_type=%s", pair.BookingID, pair.ServiceType)

	reason = strings.TrimSpace(reason)
	if reason == "" {
		var errs domain.ValidationErrors
		errs.Add("reason", "Please enter a reason for rejection.")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	token, err := uc.prepare(ctx, pair)
	if err != nil {
		return nil, err
	}

	if err := uc.api.RejectPayment(ctx, token, pair.BookingID, pair.ServiceType, reason); err != nil {
		uc.logger.Warn("Reject: booking_id=%s failed: %v", pair.BookingID, err)
		return nil, err
	}

	uc.logger.Info("Reject: booking_id=%s rejected", pair.BookingID)
	return uc.complete(ctx, token, pair, MsgRejected), nil
}

// prepare проверяет пару, берёт токен и убеждается, что заявка ещё не завершена
func (uc *UseCase) prepare(ctx context.Context, pair domain.SeenPair) (string, error) {
	if pair.BookingID.IsFalsy() || pair.ServiceType.IsFalsy() {
		var errs domain.ValidationErrors
		errs.Add("booking_id", "Booking is not selected")
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	details, err := uc.api.GetNotificationDetails(ctx, token, pair.BookingID, pair.ServiceType)
	if err != nil {
		uc.logger.Warn("PaymentAction: failed to load details booking_id=%s: %v", pair.BookingID, err)
		return "", err
	}
	if !details.CanPay() {
		uc.logger.Warn("PaymentAction: booking_id=%s already completed", pair.BookingID)
		return "", ErrAlreadyCompleted
	}
	return token, nil
}

// complete обновляет список уведомлений и перечитывает детали.
// Ошибки здесь не отменяют уже выполненную операцию.
func (uc *UseCase) complete(ctx context.Context, token string, pair domain.SeenPair, msg string) *Response {
	if err := uc.notifications.Refresh(ctx, true); err != nil {
		uc.logger.Warn("PaymentAction: refresh after action failed: %v", err)
	}

	details, err := uc.api.GetNotificationDetails(ctx, token, pair.BookingID, pair.ServiceType)
	if err != nil {
		uc.logger.Warn("PaymentAction: failed to reload details booking_id=%s: %v", pair.BookingID, err)
		details = nil
	}
	return &Response{Message: msg, Details: details}
}
