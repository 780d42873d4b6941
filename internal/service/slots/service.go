package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots/models"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Service сервис административного управления слотами
type Service struct {
	slotStore SlotStore
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotStore SlotStore, logger Logger) *Service {
	return &Service{
		slotStore: slotStore,
		logger:    logger,
	}
}

// Create создает слот вручную
// Возвращает ErrDuplicateSlot при совпадении окна с уже включенным слотом
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: date=%s, window=%s-%s, max_occupancy=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.MaxOccupancy)

	start, end, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	slot := &domain.Slot{
		SlotDate:     req.Date,
		StartTime:    start,
		EndTime:      end,
		MaxOccupancy: req.MaxOccupancy,
		Enabled:      enabled,
	}

	created, err := s.slotStore.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("CreateSlot: duplicate window %s-%s on %s",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat))
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// SetEnabled массово включает/выключает слоты
func (s *Service) SetEnabled(ctx context.Context, req *models.SetEnabledRequest) (int64, error) {
	s.logger.Info("SetEnabled: %d slots, enabled=%t", len(req.SlotIDs), req.Enabled)

	if len(req.SlotIDs) == 0 {
		return 0, fmt.Errorf("%w: slot ids are required", ErrInvalidInput)
	}

	affected, err := s.slotStore.SetEnabled(ctx, req.SlotIDs, req.Enabled)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("SetEnabled: enabling would duplicate an existing window")
			return 0, ErrDuplicateSlot
		}
		s.logger.Error("SetEnabled: repository error: %v", err)
		return 0, fmt.Errorf("%w: SetEnabled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetEnabled: toggled %d slots", affected)
	return affected, nil
}

// Delete удаляет слот, только если в нем нет активных бронирований
func (s *Service) Delete(ctx context.Context, slotID int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", slotID)

	if err := s.slotStore.DeleteIfEmpty(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("DeleteSlot: slot id=%d not found", slotID)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotNotEmpty):
			s.logger.Warn("DeleteSlot: slot id=%d has active bookings", slotID)
			return ErrSlotNotEmpty
		default:
			s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteSlot: deleted slot id=%d", slotID)
	return nil
}

// ListByDate получает все слоты на дату, включая выключенные и заполненные
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.SlotListResponse, error) {
	slots, err := s.slotStore.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(date, slots), nil
}

func validateCreateRequest(req *models.CreateSlotRequest) (types.TimeString, types.TimeString, error) {
	if req.Date.IsZero() {
		return "", "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if req.MaxOccupancy < domain.MinOccupancy || req.MaxOccupancy > domain.MaxOccupancy {
		return "", "", fmt.Errorf("%w: max occupancy must be between %d and %d",
			ErrInvalidInput, domain.MinOccupancy, domain.MaxOccupancy)
	}

	return start, end, nil
}
