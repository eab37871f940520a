package payment_action

import "github.com/m04kA/SMC-CitizenClient/internal/domain"

// Сообщения об успехе для пользователя
const (
	MsgPaid     = "Payment successful!"
	MsgRejected = "Payment rejected."
)

// Response результат операции оплаты
type Response struct {
	Message string                      // Сообщение для пользователя
	Details *domain.NotificationDetails // Детали заявки после операции, nil если перечитать не удалось
}
