package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена, удаление
// и переходы статусов. Единственный код, который освобождает места в слотах
type Service struct {
	bookingRepo BookingRepository
	slotStore   SlotStore
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotStore SlotStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotStore:   slotStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, domain.CustomerBookingsFilter{
		CustomerID: req.CustomerID,
		Status:     domainStatus,
	})
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает место в слоте
// Статус переводится условным UPDATE из активных статусов, поэтому повторная
// отмена возвращает ErrAlreadyTerminal и второго декремента не происходит.
// Смена статуса и декремент выполняются в одной транзакции
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			return ErrAlreadyTerminal
		}

		if err := s.bookingRepo.CancelIfActive(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				// Кто-то успел перевести бронирование в терминальный статус
				return ErrAlreadyTerminal
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return s.releaseSeat(txCtx, booking)
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAlreadyTerminal) {
			s.logger.Warn("Cancel: booking id=%d: %v", bookingID, err)
		} else {
			s.logger.Error("Cancel: booking id=%d: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Delete физически удаляет бронирование
// Если бронирование еще держит место в слоте (не отменено), место
// освобождается тем же путем, что и при отмене - ровно один раз
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		// Отмененное бронирование уже освободило место при отмене
		if booking.IsActive() {
			if err := s.releaseSeat(txCtx, booking); err != nil {
				return err
			}
		}

		if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
		} else {
			s.logger.Error("Delete: booking id=%d: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// UpdateStatus переводит бронирование в новый статус
// Допустимые переходы: pending -> confirmed -> completed,
// pending|confirmed -> cancelled. Переход в cancelled идет через Cancel,
// чтобы освобождение места прошло единым путем
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if newStatus == domain.StatusCancelled {
		return s.Cancel(ctx, bookingID)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(newStatus) {
			if booking.IsTerminal() {
				return ErrAlreadyTerminal
			}
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAlreadyTerminal) || errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("UpdateStatus: booking id=%d: %v", bookingID, err)
		} else {
			s.logger.Error("UpdateStatus: booking id=%d: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// releaseSeat освобождает место в слоте бронирования
// Единая точка декремента для отмены и удаления
func (s *Service) releaseSeat(ctx context.Context, booking *domain.Booking) error {
	ok, err := s.slotStore.DecrementOccupancy(ctx, booking.SlotID)
	if err != nil {
		return fmt.Errorf("%w: releaseSeat - slot store error: %v", ErrInternal, err)
	}
	if !ok {
		// Занятость уже нулевая: рассинхронизация слота и бронирований.
		// Освобождение не прерываем, но такое надо видеть в логах
		s.logger.Error("releaseSeat: slot id=%d occupancy already zero for booking id=%d",
			booking.SlotID, booking.ID)
	}
	return nil
}
