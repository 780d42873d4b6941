package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
	GenerateDefaults(ctx context.Context, date time.Time, template domain.SlotTemplate) error
	ListOpenByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
