// Package txmanager управляет транзакциями через контекст.
// Сериализуемые транзакции автоматически повторяются при конфликте
// сериализации (ошибки 40001/40P01) с ограниченным числом попыток и джиттером.
package txmanager

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
	// ErrTxConflict возвращается, когда транзакция не прошла из-за конфликта
	// сериализации после всех повторных попыток. Вызывающий код может повторить запрос.
	ErrTxConflict = errors.New("txmanager: transaction conflict, safe to retry")

	// ErrTx возвращается при прочих ошибках работы с транзакцией
	ErrTx = errors.New("txmanager: transaction error")
)

const (
	maxRetries  = 3
	retryBase   = 50 * time.Millisecond
	retryJitter = 25 * time.Millisecond
)

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций поверх dbmetrics.DB
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// Конфликты сериализации повторяются до maxRetries раз с экспоненциальным
// backoff и джиттером; после исчерпания попыток возвращается ErrTxConflict
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
	// Вложенные вызовы переиспользуют уже открытую транзакцию
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

// isSerializationFailure распознает конфликт сериализации и deadlock Postgres
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
