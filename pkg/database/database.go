package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-CitizenClient/pkg/sqlbuilder"
)

// Options параметры пула соединений
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DriverFor определяет драйвер по DSN: postgres:// и postgresql:// уходят в lib/pq,
// всё остальное считается путём к файлу sqlite
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return sqlbuilder.DriverPostgres
	}
	return sqlbuilder.DriverSQLite
}

// Connect открывает соединение и проверяет его ping-ом
func Connect(ctx context.Context, dsn string, opts Options) (*sql.DB, string, error) {
	driver := DriverFor(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == sqlbuilder.DriverSQLite {
		// sqlite допускает одного писателя, :memory: живёт в рамках одного соединения
		db.SetMaxOpenConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if opts.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, driver, nil
}
