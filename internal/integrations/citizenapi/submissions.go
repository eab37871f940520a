package citizenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// SubmissionKind вид заявки, отправляемой формой multipart
type SubmissionKind string

const (
	SubmissionWaste     SubmissionKind = "waste"
	SubmissionComplaint SubmissionKind = "complaint"
	SubmissionPollution SubmissionKind = "pollution"
	SubmissionCesspool  SubmissionKind = "cesspool"
)

type submissionTarget struct {
	path        string
	imagesField string
}

var submissionTargets = map[SubmissionKind]submissionTarget{
	SubmissionWaste:     {path: "/api/waste_mgmt/create/", imagesField: "request_images"},
	SubmissionComplaint: {path: "/api/complaint_mgmt/create/", imagesField: "complaint_images"},
	SubmissionPollution: {path: "/api/pollution_mgmt/create/", imagesField: "pollution_images"},
	SubmissionCesspool:  {path: "/api/cesspool_mgmt/create/", imagesField: "cesspool_images"},
}

// Image файл изображения для отправки
type Image struct {
	Name    string
	Content []byte
}

// Form поля формы в порядке добавления и изображения
type Form struct {
	fields [][2]string
	Images []Image
}

// Set добавляет поле формы
func (f *Form) Set(key, value string) {
	f.fields = append(f.fields, [2]string{key, value})
}

// Get значение поля формы
func (f *Form) Get(key string) (string, bool) {
	for _, kv := range f.fields {
		if kv[0] == key {
			return kv[1], true
		}
	}
	return "", false
}

// ImageContentType image/png для .png, иначе image/jpeg
func ImageContentType(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// ImageFileName имя файла, photo_<idx>.jpg если имя не задано
func ImageFileName(name string, idx int) string {
	if name == "" {
		return fmt.Sprintf("photo_%d.jpg", idx)
	}
	return name
}

// encode собирает multipart тело, изображения идут под полем imagesField
func (f *Form) encode(imagesField string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}

	for idx, img := range f.Images {
		name := ImageFileName(img.Name, idx)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imagesField, escapeQuotes(name)))
		header.Set("Content-Type", ImageContentType(name))

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// Submit отправляет форму заявки. Возвращает поля ответа сервера, если он прислал JSON-объект.
func (c *Client) Submit(ctx context.Context, token string, kind SubmissionKind, form *Form) (map[string]string, error) {
	target, ok := submissionTargets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown submission kind %q", ErrInternal, kind)
	}

	body, contentType, err := form.encode(target.imagesField)
	if err != nil {
		return nil, fmt.Errorf("%w: submit %s - failed to build form: %v", ErrInternal, kind, err)
	}

	resp, err := c.send(ctx, request{
		endpoint:    "submit." + string(kind),
		method:      http.MethodPost,
		path:        target.path,
		token:       token,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return decodeObject(resp), nil
}

// BookMandap бронирует зал
func (c *Client) BookMandap(ctx context.Context, token string, req BookMandapRequest) (map[string]string, error) {
	r, err := jsonRequest("mandap.book", http.MethodPost, "/api/event_klm/book/", token, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return decodeObject(resp), nil
}

func decodeObject(body []byte) map[string]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return map[string]string{}
	}
	return flatten(raw)
}
