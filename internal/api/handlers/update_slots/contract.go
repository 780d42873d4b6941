package update_slots

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/service/slots/models"
)

type SlotService interface {
	SetEnabled(ctx context.Context, req *models.SetEnabledRequest) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
