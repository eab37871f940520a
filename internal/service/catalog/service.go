package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

// Service сервис справочников: залы и категории жалоб.
// Справочники доступны без входа, токен передаётся, если он есть.
type Service struct {
	api    CatalogAPI
	tokens TokenProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(api CatalogAPI, tokens TokenProvider, logger Logger) *Service {
	return &Service{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

// ListMandaps список залов
func (s *Service) ListMandaps(ctx context.Context) ([]*domain.Mandap, error) {
	token, err := s.optionalToken(ctx)
	if err != nil {
		return nil, err
	}

	mandaps, err := s.api.ListMandaps(ctx, token)
	if err != nil {
		s.logger.Error("ListMandaps: failed to fetch mandaps: %v", err)
		return nil, err
	}
	return mandaps, nil
}

// GetMandap зал по ID
func (s *Service) GetMandap(ctx context.Context, id string) (*domain.Mandap, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: mandap id is required", ErrInvalidInput)
	}

	token, err := s.optionalToken(ctx)
	if err != nil {
		return nil, err
	}

	mandap, err := s.api.GetMandap(ctx, token, id)
	if err != nil {
		if errors.Is(err, citizenapi.ErrNotFound) {
			return nil, ErrMandapNotFound
		}
		s.logger.Error("GetMandap: failed to fetch mandap id=%s: %v", id, err)
		return nil, err
	}
	return mandap, nil
}

// ComplaintCategories категории жалоб с подкатегориями
func (s *Service) ComplaintCategories(ctx context.Context) ([]*domain.Category, error) {
	token, err := s.optionalToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.ListComplaintCategories(ctx, token)
}

// PollutionCategories виды загрязнений с причинами
func (s *Service) PollutionCategories(ctx context.Context) ([]*domain.Category, error) {
	token, err := s.optionalToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.ListPollutionCategories(ctx, token)
}

func (s *Service) optionalToken(ctx context.Context) (string, error) {
	token, err := s.tokens.Token(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return "", nil
	}
	return token, err
}
