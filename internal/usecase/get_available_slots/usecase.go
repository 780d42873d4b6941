package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	slotStore SlotStore
	template  domain.SlotTemplate
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotStore SlotStore, template domain.SlotTemplate, logger Logger) *UseCase {
	return &UseCase{
		slotStore: slotStore,
		template:  template,
		logger:    logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Слоты материализуются лениво: при первом запросе на дату создается
// стандартная сетка слотов, повторные запросы видят уже существующие строки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Проверяем, есть ли слоты на дату (включая выключенные и заполненные)
	count, err := uc.slotStore.CountByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to count slots for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to count slots: %v", ErrInternal, err)
	}

	// 2. Если слотов нет - создаем стандартную сетку
	// Вставка идемпотентна (ON CONFLICT DO NOTHING), гонка двух запросов безопасна
	if count == 0 {
		uc.logger.Info("GetAvailableSlots: generating default slots for date=%s",
			req.Date.Format(domain.DateFormat))

		if err := uc.slotStore.GenerateDefaults(ctx, req.Date, uc.template); err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate default slots for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to generate default slots: %v", ErrInternal, err)
		}
	}

	// 3. Читаем открытые слоты по возрастанию времени начала
	slots, err := uc.slotStore.ListOpenByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list open slots for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list open slots: %v", ErrInternal, err)
	}

	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, Slot{
			SlotID:         slot.ID,
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			RemainingSeats: slot.RemainingSeats(),
			TotalSeats:     slot.MaxOccupancy,
		})
	}

	return &Response{
		Date:  req.Date,
		Slots: result,
	}, nil
}
