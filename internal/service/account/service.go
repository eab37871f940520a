package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// Service сервис профиля пользователя
type Service struct {
	api     AccountAPI
	session SessionStore
	logger  Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(api AccountAPI, session SessionStore, logger Logger) *Service {
	return &Service{
		api:     api,
		session: session,
		logger:  logger,
	}
}

// Get получает профиль пользователя
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.api.GetAccountDetails(ctx, token)
	if err != nil {
		s.logger.Error("Get: failed to fetch account details: %v", err)
		return nil, err
	}
	return profile, nil
}

// Update сохраняет профиль и обновляет имя и email в локальной сессии
func (s *Service) Update(ctx context.Context, profile *domain.Profile) error {
	if err := validateProfile(profile); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return err
	}

	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}

	if err := s.api.UpdateAccountDetails(ctx, token, profile); err != nil {
		s.logger.Error("Update: failed to update account details: %v", err)
		return err
	}

	err = s.session.Save(ctx, &domain.Session{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
	})
	if err != nil {
		s.logger.Error("Update: failed to refresh session fields: %v", err)
		return fmt.Errorf("%w: Update - %v", ErrInternal, err)
	}

	s.logger.Info("Update: account details updated")
	return nil
}

// CheckAuth проверяет, что сервер принимает токен.
// Если нет, токен доступа удаляется и возвращается ErrSessionExpired.
func (s *Service) CheckAuth(ctx context.Context) (*domain.Session, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.api.GetAccountDetails(ctx, token); err != nil {
		s.logger.Warn("CheckAuth: token rejected: %v", err)
		if dropErr := s.session.DropAccess(ctx); dropErr != nil {
			s.logger.Error("CheckAuth: failed to drop access token: %v", dropErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	sess, err := s.session.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: CheckAuth - %v", ErrInternal, err)
	}
	return sess, nil
}

func validateProfile(p *domain.Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}

	var errs domain.ValidationErrors
	if strings.TrimSpace(p.FirstName) == "" {
		errs.Add("first_name", "First name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs.Add("last_name", "Last name is required")
	}
	if !domain.IsValidEmail(p.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	if p.DOB != "" && !domain.IsDate(p.DOB) {
		errs.Add("dob", "Date of birth must be in the format YYYY-MM-DD")
	}
	if p.Pincode != "" && !domain.IsDigits(p.Pincode) {
		errs.Add("pincode", "Pincode must contain only digits")
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
