package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CitizenClient/pkg/dbmetrics"
	"github.com/m04kA/SMC-CitizenClient/pkg/sqlbuilder"
)

const tableName = "kv_store"

const createTableQuery = `CREATE TABLE IF NOT EXISTS kv_store (
	item_key   TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// Repository строковое key-value хранилище устройства
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория.
// driver определяет формат плейсхолдеров (sqlbuilder.DriverSQLite или sqlbuilder.DriverPostgres).
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		builder: sqlbuilder.New(driver),
	}
}

// Migrate создает таблицу, если её нет
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: %v", ErrMigration, err)
	}
	return nil
}

// Get получает значение по ключу
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("item_value").
		From(tableName).
		Where(squirrel.Eq{"item_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: Get - scan key=%s: %v", ErrScanRow, key, err)
	}
	return value, nil
}

// GetMany получает значения нескольких ключей. Отсутствующие ключи в результат не попадают.
func (r *Repository) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	res := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return res, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("item_key", "item_value").
		From(tableName).
		Where(squirrel.Eq{"item_key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMany - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetMany - scan row: %v", ErrScanRow, err)
		}
		res[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMany - iterate rows: %v", ErrScanRow, err)
	}
	return res, nil
}

// Set записывает значение, перезаписывая существующее
func (r *Repository) Set(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Insert(tableName).
		Columns("item_key", "item_value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// SetMany записывает несколько значений. Атомарность обеспечивает транзакция из контекста.
func (r *Repository) SetMany(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := r.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Delete удаляет ключи. Отсутствующие ключи игнорируются.
func (r *Repository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(tableName).
		Where(squirrel.Eq{"item_key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Clear удаляет все ключи
func (r *Repository) Clear(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Keys возвращает все ключи по алфавиту
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("item_key").
		From(tableName).
		OrderBy("item_key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: Keys - scan row: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - iterate rows: %v", ErrScanRow, err)
	}
	return keys, nil
}
