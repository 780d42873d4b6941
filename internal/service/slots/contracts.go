package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	SetEnabled(ctx context.Context, ids []int64, enabled bool) (int64, error)
	DeleteIfEmpty(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
