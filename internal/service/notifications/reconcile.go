package notifications

import "github.com/m04kA/SMC-CitizenClient/internal/domain"

// Reconcile отмечает новые уведомления: новое то, чьей пары нет среди просмотренных.
// Возвращает копию списка и число новых.
func Reconcile(list []domain.Notification, seen domain.SeenSet) ([]domain.Notification, int) {
	res := make([]domain.Notification, len(list))
	unread := 0
	for i := range list {
		res[i] = list[i]
		res[i].IsNew = !seen.Contains(list[i].Pair())
		if res[i].IsNew {
			unread++
		}
	}
	return res, unread
}

// Partition делит список на новые и ранее просмотренные, порядок сервера сохраняется
func Partition(list []domain.Notification) (fresh, previous []domain.Notification) {
	for i := range list {
		if list[i].IsNew {
			fresh = append(fresh, list[i])
		} else {
			previous = append(previous, list[i])
		}
	}
	return fresh, previous
}

// FilterByCategory оставляет уведомления выбранной категории
func FilterByCategory(list []domain.Notification, category domain.NotificationCategory) []domain.Notification {
	res := make([]domain.Notification, 0, len(list))
	for i := range list {
		if list[i].MatchesCategory(category) {
			res = append(res, list[i])
		}
	}
	return res
}
