package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

// Service сервис для работы с заявками пользователя
type Service struct {
	api    BookingsAPI
	tokens TokenProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(api BookingsAPI, tokens TokenProvider, logger Logger) *Service {
	return &Service{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

// List получает заявки вкладки с фильтром по виду и строкой поиска.
// На вкладке активных остаются только заявки со статусом pending или scheduled.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]*domain.Booking, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetching bookings tab=%s, type=%s", req.Tab, req.Type)
	all, err := s.api.ListBookings(ctx, token, req.Tab, req.APIType())
	if err != nil {
		s.logger.Error("List: failed to fetch bookings: %v", err)
		return nil, err
	}

	res := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if req.Tab == domain.TabActive && !b.IsActive() {
			continue
		}
		if !b.MatchesType(req.Type) || !b.Matches(req.Search) {
			continue
		}
		res = append(res, b)
	}

	s.logger.Info("List: %d of %d bookings match", len(res), len(all))
	return res, nil
}

// Get получает заявку по виду и идентификатору
func (s *Service) Get(ctx context.Context, serviceType, id string) (*domain.Booking, error) {
	if strings.TrimSpace(serviceType) == "" || strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: service type and id are required", ErrInvalidInput)
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := s.api.GetBooking(ctx, token, serviceType, id)
	if err != nil {
		if errors.Is(err, citizenapi.ErrNotFound) {
			s.logger.Warn("Get: booking %s/%s not found", serviceType, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: failed to fetch booking %s/%s: %v", serviceType, id, err)
		return nil, err
	}
	return booking, nil
}

// ListUserComplaints получает жалобы пользователя, разделённые на активные и закрытые
func (s *Service) ListUserComplaints(ctx context.Context) (*models.ComplaintsResponse, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	complaints, err := s.api.ListUserComplaints(ctx, token)
	if err != nil {
		s.logger.Error("ListUserComplaints: failed to fetch complaints: %v", err)
		return nil, err
	}

	res := &models.ComplaintsResponse{
		Pending:  []*domain.Complaint{},
		Resolved: []*domain.Complaint{},
	}
	for _, c := range complaints {
		switch {
		case c.IsPending():
			res.Pending = append(res.Pending, c)
		case c.IsResolved():
			res.Resolved = append(res.Resolved, c)
		}
	}
	return res, nil
}
