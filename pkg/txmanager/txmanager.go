package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CitizenClient/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось закоммитить транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner умеет начинать транзакции (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в транзакции, передавая её через контекст
type TransactionManager struct {
	beginner TxBeginner
}

// NewTransactionManager создает менеджер поверх *dbmetrics.DB
func NewTransactionManager(beginner TxBeginner) *TransactionManager {
	return &TransactionManager{beginner: beginner}
}

// NewSQLTransactionManager создает менеджер поверх обычного *sql.DB
func NewSQLTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{beginner: sqlBeginner{db: db}}
}

type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}

// Do выполняет fn в транзакции. Если транзакция уже есть в контексте, fn выполняется в ней.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := dbmetrics.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}
	return nil
}
