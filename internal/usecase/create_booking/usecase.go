package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slotStore    SlotStore
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotStore SlotStore,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotStore:    slotStore,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Инкремент занятости слота и вставка бронирования выполняются в одной
// сериализуемой транзакции: если вставка не прошла, откат транзакции
// снимает и инкремент - наружу половинчатое состояние не видно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, slot=%d, date=%s",
		req.CustomerID, req.ServiceID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу и снимаем снимок названия и цены
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%d is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	totalPrice := service.BasePrice
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем слот внутри транзакции - никакого кэша занятости между вызовами
		slot, err := uc.slotStore.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Валидация даты: запрошенная дата должна совпадать с датой слота
		// и не лежать в прошлом
		if err := validateDate(req.Date, slot.SlotDate, now); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.3. Атомарно занимаем место: один условный UPDATE, без чтения-записи.
		// false означает, что слот заполнен, выключен или исчез
		ok, err := uc.slotStore.IncrementOccupancy(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to increment occupancy for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to increment occupancy: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("CreateBooking: slot id=%d not available, %d/%d seats taken",
				req.SlotID, slot.CurrentOccupancy, slot.MaxOccupancy)
			return ErrSlotNotAvailable
		}

		// 4.4. Создаем бронирование с денормализацией окна слота и снимком услуги
		booking := &domain.Booking{
			CustomerID:   req.CustomerID,
			ServiceID:    req.ServiceID,
			SlotID:       req.SlotID,
			BookingDate:  slot.SlotDate,
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime,
			Address:      req.Address,
			Instructions: req.Instructions,
			ServiceName:  service.Name,
			TotalPrice:   totalPrice,
			Status:       domain.StatusPending,
		}

		// 4.5. Сохраняем бронирование
		// Ошибка вставки откатывает транзакцию вместе с инкрементом
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for slot id=%d", result.ID, result.SlotID)

	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		ServiceID:    result.ServiceID,
		SlotID:       result.SlotID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime.String(),
		EndTime:      result.EndTime.String(),
		Address:      result.Address,
		Instructions: result.Instructions,
		ServiceName:  result.ServiceName,
		TotalPrice:   result.TotalPrice,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
