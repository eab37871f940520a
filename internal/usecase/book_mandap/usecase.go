package book_mandap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// UseCase use case для бронирования зала
type UseCase struct {
	api    MandapAPI
	tokens TokenProvider
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(api MandapAPI, tokens TokenProvider, logger Logger) *UseCase {
	return &UseCase{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

// Execute проверяет форму и бронирует зал с оплатой онлайн
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookMandap: mandap=%s, start=%s, end=%s", req.MandapID, req.StartDatetime, req.EndDatetime)

	// 1. Валидация входных данных
	if errs := validateRequest(req); len(errs) > 0 {
		uc.logger.Warn("BookMandap: validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	// 2. Токен доступа
	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Бронирование
	result, err := uc.api.BookMandap(ctx, token, citizenapi.BookMandapRequest{
		Kalyanmandap:       strings.TrimSpace(req.MandapID),
		Occasion:           strings.TrimSpace(req.Occasion),
		NumberOfPeople:     strings.TrimSpace(req.NumberOfPeople),
		StartDatetime:      strings.TrimSpace(req.StartDatetime),
		EndDatetime:        strings.TrimSpace(req.EndDatetime),
		Duration:           strings.TrimSpace(req.Duration),
		AdditionalRequests: req.AdditionalRequests,
		PaymentMethod:      domain.PaymentMethodOnline,
	})
	if err != nil {
		var vErr *citizenapi.ValidationError
		if errors.As(err, &vErr) && errors.Is(err, citizenapi.ErrValidation) {
			uc.logger.Warn("BookMandap: mandap=%s rejected: %v", req.MandapID, err)
			return nil, &RejectedError{Messages: rejectionMessages(vErr), Err: err}
		}
		uc.logger.Error("BookMandap: mandap=%s failed: %v", req.MandapID, err)
		return nil, err
	}

	uc.logger.Info("BookMandap: mandap=%s booked", req.MandapID)
	return &Response{MandapID: req.MandapID, Result: result}, nil
}
