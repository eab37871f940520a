package submit_request

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	submitRequest "github.com/m04kA/SMC-CitizenClient/internal/usecase/submit_request"
)

// imagesField имя поля multipart с фотографиями
const imagesField = "images"

// maxImageSize ограничение на одну фотографию
const maxImageSize = 10 << 20

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Kind   string            `json:"kind"`
	Result map[string]string `json:"result"`
}

// ToUseCaseRequest собирает запрос use case из multipart формы.
// Значения полей берутся первыми, файлы из поля images в порядке загрузки.
func ToUseCaseRequest(kind string, form *multipart.Form) (*submitRequest.Request, error) {
	req := &submitRequest.Request{
		Kind:   submitRequest.Kind(kind),
		Fields: make(map[string]string, len(form.Value)),
	}
	for key, values := range form.Value {
		if len(values) > 0 {
			req.Fields[key] = values[0]
		}
	}

	files := form.File[imagesField]
	if len(files) > domain.MaxImagesPerRequest {
		// отдаём use case столько, чтобы сработала проверка количества, не читая лишнее
		files = files[:domain.MaxImagesPerRequest+1]
	}
	for _, fh := range files {
		img, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		req.Images = append(req.Images, img)
	}
	return req, nil
}

func readImage(fh *multipart.FileHeader) (citizenapi.Image, error) {
	if fh.Size > maxImageSize {
		return citizenapi.Image{}, fmt.Errorf("image %s is too large", fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return citizenapi.Image{}, fmt.Errorf("open image %s: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return citizenapi.Image{}, fmt.Errorf("read image %s: %w", fh.Filename, err)
	}
	return citizenapi.Image{Name: fh.Filename, Content: content}, nil
}
