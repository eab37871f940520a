package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

// Store хранилище уведомлений: список с сервера, сопоставленный с просмотренными парами
type Store struct {
	api     NotificationsAPI
	session SessionStore
	metrics Metrics
	logger  Logger

	mu          sync.Mutex
	items       []domain.Notification
	unread      int
	loading     bool
	surfaceOpen bool
	lastError   string
	updatedAt   time.Time
	generation  uint64

	subsMu    sync.Mutex
	subs      map[int]chan Snapshot
	nextSubID int
}

// NewStore создает новое хранилище уведомлений
func NewStore(api NotificationsAPI, sess SessionStore, metrics Metrics, logger Logger) *Store {
	return &Store{
		api:     api,
		session: sess,
		metrics: metrics,
		logger:  logger,
		subs:    make(map[int]chan Snapshot),
	}
}

// Refresh перезагружает список.
// Не initial обновление выполняется только при открытой панели уведомлений.
// Без токена обновление пропускается.
// При ошибке запроса прежний список сохраняется, ошибка попадает в LastError.
func (s *Store) Refresh(ctx context.Context, initial bool) error {
	s.mu.Lock()
	if !initial && !s.surfaceOpen {
		s.mu.Unlock()
		return nil
	}
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()
	s.publish()

	token, err := s.session.Token(ctx)
	if err != nil {
		s.finish(gen, nil, 0, "")
		if errors.Is(err, session.ErrNoSession) {
			s.logger.Info("Refresh: no session, skipped")
			return nil
		}
		return fmt.Errorf("%w: Refresh - token: %v", ErrInternal, err)
	}

	list, err := s.api.ListNotifications(ctx, token)
	if err != nil {
		s.logger.Warn("Refresh: failed to fetch notifications: %v", err)
		s.finish(gen, nil, 0, err.Error())
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	seen, err := s.session.LoadSeen(ctx)
	if err != nil {
		s.logger.Error("Refresh: failed to load seen pairs: %v", err)
		seen = domain.SeenSet{}
	}

	reconciled, unread := Reconcile(list, seen)
	s.finish(gen, reconciled, unread, "")
	s.logger.Info("Refresh: %d notifications, %d new", len(reconciled), unread)
	return nil
}

// finish применяет результат обновления. Результат устаревшего обновления отбрасывается.
// items == nil оставляет прежний список.
func (s *Store) finish(gen uint64, items []domain.Notification, unread int, errMsg string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.lastError = errMsg
	if items != nil {
		s.items = items
		s.unread = unread
		s.updatedAt = time.Now()
	}
	total, count := len(s.items), s.unread
	s.mu.Unlock()

	s.metrics.SetNotifications(total, count)
	s.publish()
}

// SetSurfaceOpen открывает или закрывает панель уведомлений. Открытие запускает обновление.
func (s *Store) SetSurfaceOpen(ctx context.Context, open bool) error {
	s.mu.Lock()
	s.surfaceOpen = open
	s.mu.Unlock()

	if !open {
		s.publish()
		return nil
	}
	return s.Refresh(ctx, false)
}

// MarkViewed отмечает уведомление просмотренным.
// Возвращает false, если уведомления нет или оно уже просмотрено.
func (s *Store) MarkViewed(ctx context.Context, pair domain.SeenPair) (bool, error) {
	s.mu.Lock()
	idx := s.indexOf(pair, true)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}

	seen, err := s.session.LoadSeen(ctx)
	if err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: MarkViewed - load seen: %v", ErrInternal, err)
	}
	if updated, added := seen.Add(pair); added {
		if err := s.session.SaveSeen(ctx, updated); err != nil {
			s.mu.Unlock()
			return false, fmt.Errorf("%w: MarkViewed - save seen: %v", ErrInternal, err)
		}
	}

	s.items[idx].IsNew = false
	if s.unread > 0 {
		s.unread--
	}
	total, count := len(s.items), s.unread
	s.mu.Unlock()

	s.metrics.SetNotifications(total, count)
	s.publish()
	return true, nil
}

// Open открывает уведомление: отмечает просмотренным и загружает детали заявки
func (s *Store) Open(ctx context.Context, pair domain.SeenPair) (*domain.NotificationDetails, error) {
	s.mu.Lock()
	idx := s.indexOf(pair, false)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNotificationNotFound
	}
	item := s.items[idx]
	s.mu.Unlock()

	if item.IsTerminal() {
		return nil, ErrNotInteractive
	}

	if _, err := s.MarkViewed(ctx, pair); err != nil {
		return nil, err
	}

	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.GetNotificationDetails(ctx, token, item.DetailsBookingID(), item.ServiceType)
}

// CheckLoginState после свежего логина обновляет список и открывает панель уведомлений
func (s *Store) CheckLoginState(ctx context.Context) (bool, error) {
	justLoggedIn, err := s.session.ConsumeJustLoggedIn(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: CheckLoginState - %v", ErrInternal, err)
	}
	if !justLoggedIn {
		return false, nil
	}

	s.mu.Lock()
	s.surfaceOpen = true
	s.mu.Unlock()

	if err := s.Refresh(ctx, true); err != nil {
		return true, err
	}
	return true, nil
}

// Snapshot копия текущего состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]domain.Notification, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:       items,
		Unread:      s.unread,
		Loading:     s.loading,
		SurfaceOpen: s.surfaceOpen,
		LastError:   s.lastError,
		UpdatedAt:   s.updatedAt,
	}
}

// Reset очищает хранилище (выход из аккаунта)
func (s *Store) Reset() {
	s.mu.Lock()
	s.generation++
	s.items = nil
	s.unread = 0
	s.loading = false
	s.surfaceOpen = false
	s.lastError = ""
	s.updatedAt = time.Time{}
	s.mu.Unlock()

	s.metrics.SetNotifications(0, 0)
	s.publish()
}

// Subscribe подписка на изменения. Канал хранит только последнее состояние.
// cancel закрывает канал.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publish() {
	snap := s.Snapshot()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// indexOf ищет уведомление по паре. onlyNew ищет среди новых.
func (s *Store) indexOf(pair domain.SeenPair, onlyNew bool) int {
	for i := range s.items {
		if s.items[i].Pair() != pair {
			continue
		}
		if onlyNew && !s.items[i].IsNew {
			continue
		}
		return i
	}
	return -1
}
