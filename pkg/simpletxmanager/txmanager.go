package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/carhub/booking-service/pkg/dbmetrics"
)

const (
	maxSerializableRetries = 3

	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// ErrTxFailed возвращается, когда транзакция не смогла завершиться
var ErrTxFailed = errors.New("simpletxmanager: transaction failed")

// TransactionManager управляет транзакциями напрямую над *sql.DB (без метрик)
// Используется, когда сбор метрик отключён в конфигурации
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с повторами
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTxFailed, lastErr)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	txCtx := dbmetrics.WithTx(ctx, wrapped)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTxFailed, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTxFailed, err)
	}

	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure || string(pqErr.Code) == pqDeadlockDetected
	}
	return false
}
