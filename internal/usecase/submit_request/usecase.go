package submit_request

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// UseCase use case для отправки заявок с фотографиями
type UseCase struct {
	submissions SubmissionAPI
	catalog     CatalogAPI
	tokens      TokenProvider
	now         func() time.Time
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(submissions SubmissionAPI, catalog CatalogAPI, tokens TokenProvider, logger Logger) *UseCase {
	return &UseCase{
		submissions: submissions,
		catalog:     catalog,
		tokens:      tokens,
		now:         time.Now,
		logger:      logger,
	}
}

// Execute проверяет форму, собирает multipart запрос и отправляет заявку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: kind=%s, images=%d", req.Kind, len(req.Images))

	submission, ok := req.Kind.Submission()
	if !ok {
		uc.logger.Warn("SubmitRequest: unknown kind %q", req.Kind)
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	form, errs, err := uc.buildForm(ctx, token, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		uc.logger.Warn("SubmitRequest: validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	result, err := uc.submissions.Submit(ctx, token, submission, form)
	if err != nil {
		uc.logger.Error("SubmitRequest: kind=%s rejected: %v", req.Kind, err)
		return nil, err
	}

	uc.logger.Info("SubmitRequest: kind=%s created", req.Kind)
	return &Response{Kind: req.Kind, Result: result}, nil
}

func (uc *UseCase) buildForm(ctx context.Context, token string, req *Request) (*citizenapi.Form, domain.ValidationErrors, error) {
	f := fields(req.Fields)
	if f == nil {
		f = fields{}
	}

	switch req.Kind {
	case KindPublicWaste:
		form, errs := buildPublicWasteForm(f, req.Images)
		return form, errs, nil
	case KindPrivateWaste:
		form, errs := buildPrivateWasteForm(f, req.Images, uc.now())
		return form, errs, nil
	case KindComplaint:
		categories, err := uc.catalog.ListComplaintCategories(ctx, token)
		if err != nil {
			uc.logger.Error("SubmitRequest: failed to load complaint categories: %v", err)
			return nil, nil, fmt.Errorf("%w: complaint categories: %w", ErrInternal, err)
		}
		form, errs := buildComplaintForm(f, req.Images, categories)
		return form, errs, nil
	case KindPollution:
		categories, err := uc.catalog.ListPollutionCategories(ctx, token)
		if err != nil {
			uc.logger.Error("SubmitRequest: failed to load pollution categories: %v", err)
			return nil, nil, fmt.Errorf("%w: pollution categories: %w", ErrInternal, err)
		}
		form, errs := buildPollutionForm(f, req.Images, categories)
		return form, errs, nil
	case KindCesspool:
		form, errs := buildCesspoolForm(f, req.Images)
		return form, errs, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
}
