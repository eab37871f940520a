package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/infra/storage/kv"
)

// Ключи локального хранилища
const (
	KeyAccess        = "access"
	KeyRefresh       = "refresh"
	KeyFirstName     = "first_name"
	KeyLastName      = "last_name"
	KeyEmail         = "email"
	KeyUserID        = "user_id"
	KeySeenPairs     = "seenNotificationPairs"
	KeyJustLoggedIn  = "justLoggedIn"
	KeySchemaVersion = "session_schema_version"
)

// SchemaVersion текущая версия записи сессии
const SchemaVersion = 1

// authKeys удаляются при обычном выходе, список просмотренных уведомлений остаётся
var authKeys = []string{KeyAccess, KeyRefresh, KeyFirstName, KeyLastName, KeyEmail, KeyUserID}

// Claims данные из токена доступа
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// Expired истёк ли токен к моменту now. Токен без exp не истекает.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Service типизированная сессия поверх key-value хранилища
type Service struct {
	store  KVStore
	tx     TxManager
	logger Logger
}

// NewService создает новый экземпляр сервиса сессии
func NewService(store KVStore, tx TxManager, logger Logger) *Service {
	return &Service{
		store:  store,
		tx:     tx,
		logger: logger,
	}
}

// Migrate приводит сохранённую запись к текущей версии схемы.
// Отсутствие версии означает запись v0 (до появления версий), она совместима с v1.
func (s *Service) Migrate(ctx context.Context) error {
	raw, err := s.store.Get(ctx, KeySchemaVersion)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("%w: Migrate - read version: %v", ErrInternal, err)
	}

	version := 0
	if err == nil {
		version, err = strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: stored version %q", ErrUnsupportedSchema, raw)
		}
	}

	switch {
	case version == SchemaVersion:
		return nil
	case version > SchemaVersion:
		return fmt.Errorf("%w: stored version %d, supported %d", ErrUnsupportedSchema, version, SchemaVersion)
	}

	s.logger.Info("Migrate: upgrading session record from v%d to v%d", version, SchemaVersion)
	if err := s.store.Set(ctx, KeySchemaVersion, strconv.Itoa(SchemaVersion)); err != nil {
		return fmt.Errorf("%w: Migrate - write version: %v", ErrInternal, err)
	}
	return nil
}

// Load читает сессию. Отсутствующие ключи дают пустые значения.
func (s *Service) Load(ctx context.Context) (*domain.Session, error) {
	keys := []string{KeyAccess, KeyRefresh, KeyFirstName, KeyLastName, KeyEmail, KeyUserID, KeyJustLoggedIn}
	values, err := s.store.GetMany(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrInternal, err)
	}

	return &domain.Session{
		Access:       values[KeyAccess],
		Refresh:      values[KeyRefresh],
		FirstName:    values[KeyFirstName],
		LastName:     values[KeyLastName],
		Email:        values[KeyEmail],
		UserID:       values[KeyUserID],
		JustLoggedIn: values[KeyJustLoggedIn] == "true",
	}, nil
}

// Save записывает непустые поля сессии
func (s *Service) Save(ctx context.Context, sess *domain.Session) error {
	values := make(map[string]string)
	for key, value := range map[string]string{
		KeyAccess:    sess.Access,
		KeyRefresh:   sess.Refresh,
		KeyFirstName: sess.FirstName,
		KeyLastName:  sess.LastName,
		KeyEmail:     sess.Email,
		KeyUserID:    sess.UserID,
	} {
		if value != "" {
			values[key] = value
		}
	}
	if sess.JustLoggedIn {
		values[KeyJustLoggedIn] = "true"
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.store.SetMany(ctx, values)
	})
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrInternal, err)
	}
	return nil
}

// SaveLogin сохраняет все поля ответа логина как есть.
// Если в ответе нет user_id, он берётся из токена доступа.
func (s *Service) SaveLogin(ctx context.Context, fields map[string]string) error {
	values := make(map[string]string, len(fields)+1)
	for key, value := range fields {
		values[key] = value
	}

	if values[KeyUserID] == "" && values[KeyAccess] != "" {
		claims, err := ParseClaims(values[KeyAccess])
		if err != nil {
			s.logger.Warn("SaveLogin: cannot read claims from access token: %v", err)
		} else if claims.UserID != "" {
			values[KeyUserID] = claims.UserID
		}
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.store.SetMany(ctx, values)
	})
	if err != nil {
		return fmt.Errorf("%w: SaveLogin - %v", ErrInternal, err)
	}

	s.logger.Info("SaveLogin: stored %d session fields", len(values))
	return nil
}

// Token возвращает токен доступа или ErrNoSession
func (s *Service) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, KeyAccess)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("%w: Token - %v", ErrInternal, err)
	}
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Claims читает данные текущего токена доступа
func (s *Service) Claims(ctx context.Context) (*Claims, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	return ParseClaims(token)
}

// Clear удаляет токены и данные пользователя, список просмотренных уведомлений сохраняется
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, authKeys...); err != nil {
		return fmt.Errorf("%w: Clear - %v", ErrInternal, err)
	}
	s.logger.Info("Clear: session keys removed")
	return nil
}

// Wipe очищает хранилище полностью
func (s *Service) Wipe(ctx context.Context) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.store.Clear(ctx); err != nil {
			return err
		}
		return s.store.Set(ctx, KeySchemaVersion, strconv.Itoa(SchemaVersion))
	})
	if err != nil {
		return fmt.Errorf("%w: Wipe - %v", ErrInternal, err)
	}
	s.logger.Info("Wipe: local storage cleared")
	return nil
}

// DropAccess удаляет только токен доступа (сервер его отклонил)
func (s *Service) DropAccess(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyAccess); err != nil {
		return fmt.Errorf("%w: DropAccess - %v", ErrInternal, err)
	}
	return nil
}

// MarkJustLoggedIn ставит флаг первого входа после логина
func (s *Service) MarkJustLoggedIn(ctx context.Context) error {
	if err := s.store.Set(ctx, KeyJustLoggedIn, "true"); err != nil {
		return fmt.Errorf("%w: MarkJustLoggedIn - %v", ErrInternal, err)
	}
	return nil
}

// ConsumeJustLoggedIn читает и сбрасывает флаг первого входа
func (s *Service) ConsumeJustLoggedIn(ctx context.Context) (bool, error) {
	value, err := s.store.Get(ctx, KeyJustLoggedIn)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: ConsumeJustLoggedIn - read: %v", ErrInternal, err)
	}
	if err := s.store.Delete(ctx, KeyJustLoggedIn); err != nil {
		return false, fmt.Errorf("%w: ConsumeJustLoggedIn - delete: %v", ErrInternal, err)
	}
	return value == "true", nil
}

// LoadSeen читает список просмотренных уведомлений.
// Отсутствующее или повреждённое значение даёт пустой список.
func (s *Service) LoadSeen(ctx context.Context) (domain.SeenSet, error) {
	raw, err := s.store.Get(ctx, KeySeenPairs)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return domain.SeenSet{}, nil
		}
		return nil, fmt.Errorf("%w: LoadSeen - %v", ErrInternal, err)
	}

	var seen domain.SeenSet
	if err := json.Unmarshal([]byte(raw), &seen); err != nil {
		s.logger.Warn("LoadSeen: stored value is not a JSON array, starting empty: %v", err)
		return domain.SeenSet{}, nil
	}
	if seen == nil {
		seen = domain.SeenSet{}
	}
	return seen, nil
}

// SaveSeen сохраняет список просмотренных уведомлений
func (s *Service) SaveSeen(ctx context.Context, seen domain.SeenSet) error {
	if seen == nil {
		seen = domain.SeenSet{}
	}
	data, err := json.Marshal(seen)
	if err != nil {
		return fmt.Errorf("%w: SaveSeen - marshal: %v", ErrInternal, err)
	}
	if err := s.store.Set(ctx, KeySeenPairs, string(data)); err != nil {
		return fmt.Errorf("%w: SaveSeen - %v", ErrInternal, err)
	}
	return nil
}

// ParseClaims читает user_id и exp из JWT без проверки подписи.
// Подпись проверяет сервер, клиенту ключ неизвестен.
func ParseClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{UserID: claimString(mapClaims["user_id"])}
	if claims.UserID == "" {
		claims.UserID = claimString(mapClaims["sub"])
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: exp: %v", ErrInvalidToken, err)
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
