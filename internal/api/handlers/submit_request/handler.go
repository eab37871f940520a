package submit_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	submitRequest "github.com/m04kA/SMC-CitizenClient/internal/usecase/submit_request"
)

const (
	msgInvalidForm   = "Invalid form data"
	msgUnknownKind   = "Unknown request type"
	msgSubmitFailed  = "Failed to submit request"
	msgTooLarge      = "Request is too large"
	maxMultipartSize = 64 << 20
	maxFieldsSize    = 1 << 20
)

// maxBodySize все фотографии максимального размера плюс поля формы
const maxBodySize = domain.MaxImagesPerRequest*maxImageSize + maxFieldsSize

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{kind}
// multipart/form-data: поля заявки и до пяти файлов в поле images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxMultipartSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /requests/{kind} - Body too large: kind=%s, limit=%d", kind, tooLarge.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		h.logger.Warn("POST /requests/{kind} - Invalid multipart form: kind=%s, error=%v", kind, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer r.MultipartForm.RemoveAll()

	useCaseReq, err := ToUseCaseRequest(kind, r.MultipartForm)
	if err != nil {
		h.logger.Warn("POST /requests/{kind} - Failed to read images: kind=%s, error=%v", kind, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrUnknownKind):
			h.logger.Warn("POST /requests/{kind} - Unknown kind: %s", kind)
			handlers.RespondNotFound(w, msgUnknownKind)

		case errors.Is(err, submitRequest.ErrInternal):
			h.logger.Error("POST /requests/{kind} - Failed to prepare request: kind=%s, error=%v", kind, err)
			handlers.RespondUpstreamError(w, err, msgSubmitFailed)

		default:
			h.logger.Warn("POST /requests/{kind} - Submit failed: kind=%s, error=%v", kind, err)
			handlers.RespondUpstreamError(w, err, msgSubmitFailed)
		}
		return
	}

	h.logger.Info("POST /requests/{kind} - Request submitted: kind=%s", kind)
	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{Kind: string(result.Kind), Result: result.Result})
}
