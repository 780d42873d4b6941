package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"slot_date",
	"start_time",
	"end_time",
	"max_occupancy",
	"current_occupancy",
	"enabled",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
// Все мутации occupancy выполняются одним условным UPDATE - никогда
// как чтение с последующей записью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот с нулевой занятостью
// Возвращает ErrDuplicateSlot, если включенный слот с таким окном уже существует
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"max_occupancy",
			"enabled",
		).
		Values(
			s.SlotDate,
			s.StartTime,
			s.EndTime,
			s.MaxOccupancy,
			s.Enabled,
		).
		Suffix("RETURNING id, current_occupancy, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CurrentOccupancy,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GenerateDefaults идемпотентно создает слоты шаблона на указанную дату
// Каждое окно вставляется через ON CONFLICT DO NOTHING: коллизия с уже
// существующим слотом молча пропускается, поэтому операцию безопасно
// вызывать повторно и конкурентно - дубликатов и ошибок не будет
func (r *Repository) GenerateDefaults(ctx context.Context, date time.Time, template domain.SlotTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	windows, err := template.Windows()
	if err != nil {
		return fmt.Errorf("%w: GenerateDefaults - build windows: %v", ErrBuildQuery, err)
	}

	builder := psqlbuilder.Insert("slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"max_occupancy",
			"enabled",
		)

	for _, w := range windows {
		builder = builder.Values(date, w.Start, w.End, template.MaxOccupancy, true)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (slot_date, start_time, end_time) WHERE enabled DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: GenerateDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: GenerateDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementOccupancy атомарно занимает одно место в слоте
// Единственный условный UPDATE: инкремент проходит только если слот включен
// и в нем есть свободные места. Возвращает false без мутации, если слот
// заполнен, выключен или не существует
func (r *Repository) IncrementOccupancy(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("current_occupancy", squirrel.Expr("current_occupancy + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "enabled": true}).
		Where(squirrel.Expr("current_occupancy < max_occupancy")).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IncrementOccupancy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: IncrementOccupancy - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: IncrementOccupancy - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// DecrementOccupancy атомарно освобождает одно место в слоте
// Декремент проходит только при current_occupancy > 0 - защита от
// двойного декремента при повторной отмене
func (r *Repository) DecrementOccupancy(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("current_occupancy", squirrel.Expr("current_occupancy - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_occupancy > 0")).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: DecrementOccupancy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DecrementOccupancy - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DecrementOccupancy - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// SetEnabled массово включает/выключает слоты, возвращает число затронутых строк
func (r *Repository) SetEnabled(ctx context.Context, ids []int64, enabled bool) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SetEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			// Включение слота столкнулось с уже включенным дублем окна
			return 0, ErrDuplicateSlot
		}
		return 0, fmt.Errorf("%w: SetEnabled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SetEnabled - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteIfEmpty удаляет слот только при нулевой занятости
// Возвращает ErrSlotNotEmpty, если в слоте остались активные бронирования
func (r *Repository) DeleteIfEmpty(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_occupancy = 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "не найден" и "не пуст"
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotNotEmpty
	}

	return nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByDate получает все слоты на дату, отсортированные по времени начала
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	return r.listByDate(ctx, date, false)
}

// ListOpenByDate получает открытые для бронирования слоты на дату:
// включенные и с незаполненной занятостью, по возрастанию времени начала
func (r *Repository) ListOpenByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	return r.listByDate(ctx, date, true)
}

// CountByDate возвращает количество слотов на дату (включая выключенные)
// Используется для решения о ленивой генерации шаблона
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) listByDate(ctx context.Context, date time.Time, openOnly bool) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC")

	if openOnly {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"enabled": true}).
			Where(squirrel.Expr("current_occupancy < max_occupancy"))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: listByDate - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listByDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SlotDate,
		&s.StartTime,
		&s.EndTime,
		&s.MaxOccupancy,
		&s.CurrentOccupancy,
		&s.Enabled,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
