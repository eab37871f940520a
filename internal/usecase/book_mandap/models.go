package book_mandap

// Request модель запроса на бронирование зала
type Request struct {
	MandapID           string // ID зала (kalyanmandap)
	Occasion           string // Повод, например "Wedding"
	NumberOfPeople     string // Количество гостей
	StartDatetime      string // Начало, YYYY-MM-DDTHH:MM:SS
	EndDatetime        string // Окончание, YYYY-MM-DDTHH:MM:SS
	Duration           string // Длительность в часах
	AdditionalRequests string // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	MandapID string
	Result   map[string]string // Тело ответа сервера
}
