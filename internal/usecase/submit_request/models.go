package submit_request

import (
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

// Kind вид заявки в адресе /requests/{kind}
type Kind string

const (
	KindPublicWaste  Kind = "waste-public"
	KindPrivateWaste Kind = "waste-private"
	KindComplaint    Kind = "complaint"
	KindPollution    Kind = "pollution"
	KindCesspool     Kind = "cesspool"
)

// Kinds все виды заявок
var Kinds = []Kind{KindPublicWaste, KindPrivateWaste, KindComplaint, KindPollution, KindCesspool}

// Submission вид заявки на сервере
func (k Kind) Submission() (citizenapi.SubmissionKind, bool) {
	switch k {
	case KindPublicWaste, KindPrivateWaste:
		return citizenapi.SubmissionWaste, true
	case KindComplaint:
		return citizenapi.SubmissionComplaint, true
	case KindPollution:
		return citizenapi.SubmissionPollution, true
	case KindCesspool:
		return citizenapi.SubmissionCesspool, true
	default:
		return "", false
	}
}

// Request модель запроса на создание заявки
type Request struct {
	Kind   Kind
	Fields map[string]string  // поля формы, как их заполнил пользователь
	Images []citizenapi.Image // от 0 до 5 фотографий
}

// Response модель ответа: поля ответа сервера в строковом виде
type Response struct {
	Kind   Kind
	Result map[string]string
}
