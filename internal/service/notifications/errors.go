package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомления с такой парой нет в списке
	ErrNotificationNotFound = errors.New("notifications: notification not found")

	// ErrNotInteractive возвращается для оплаченных, отклонённых и закрытых уведомлений
	ErrNotInteractive = errors.New("notifications: notification is not interactive")

	// ErrFetchFailed возвращается, когда не удалось получить список с сервера
	ErrFetchFailed = errors.New("notifications: fetch failed")

	// ErrInternal возвращается при ошибках локального хранилища
	ErrInternal = errors.New("notifications: internal error")
)
