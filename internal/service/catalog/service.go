package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/service"
	"github.com/m04kA/SMC-CleaningService/internal/service/catalog/models"
)

// Service сервис каталога услуг клининга
// Обычный CRUD: цены и активность меняются без влияния на существующие
// бронирования, раз навсегда удалить услугу с бронированиями нельзя
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, category=%q, price=%.2f", req.Name, req.Category, req.BasePrice)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Active:          true,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// List получает список услуг
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	current, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(current, req)

	if current.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if current.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if current.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if err := s.serviceRepo.Update(ctx, current); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%d", id)
	return models.FromDomainService(current), nil
}

// Delete удаляет услугу, если на нее не ссылаются бронирования
// Для услуг с историей используйте деактивацию через Update
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrServiceInUse):
			s.logger.Warn("DeleteService: service id=%d is referenced by bookings", id)
			return ErrServiceInUse
		default:
			s.logger.Error("DeleteService: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

func validateCreateRequest(req *models.CreateServiceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.BasePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(s *domain.Service, req *models.UpdateServiceRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.BasePrice != nil {
		s.BasePrice = *req.BasePrice
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.Active != nil {
		s.Active = *req.Active
	}
}
