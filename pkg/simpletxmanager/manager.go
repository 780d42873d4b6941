// Package simpletxmanager вариант txmanager поверх чистого *sql.DB,
// без обёртки метрик. Используется, когда метрики выключены в конфигурации.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sethvargo/go-retry"

	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
)

var (
	// ErrTxConflict возвращается при конфликте сериализации после всех попыток
	ErrTxConflict = errors.New("simpletxmanager: transaction conflict, safe to retry")

	// ErrTx возвращается при прочих ошибках работы с транзакцией
	ErrTx = errors.New("simpletxmanager: transaction error")
)

const (
	maxRetries  = 3
	retryBase   = 50 * time.Millisecond
	retryJitter = 25 * time.Millisecond
)

// TransactionManager менеджер транзакций поверх *sql.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с повторами
// при конфликте сериализации
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.WithJitter(retryJitter, retry.NewExponential(retryBase)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		txErr := m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if isSerializationFailure(txErr) {
			return retry.RetryableError(txErr)
		}
		return txErr
	})

	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrTxConflict, err)
	}
	return err
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", ErrTx, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
