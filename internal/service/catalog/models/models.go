package models

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string
	Description     string
	BasePrice       float64
	DurationMinutes int
	Category        string
}

// UpdateServiceRequest запрос на обновление услуги
// nil-поля остаются без изменений
type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	BasePrice       *float64
	DurationMinutes *int
	Category        *string
	Active          *bool
}

// ServiceResponse модель услуги для внешних слоев
type ServiceResponse struct {
	ID              int64
	Name            string
	Description     string
	BasePrice       float64
	DurationMinutes int
	Category        string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse
	Total    int
}

// FromDomainService конвертирует доменную услугу в response-модель
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		BasePrice:       s.BasePrice,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список доменных услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return &ServiceListResponse{
		Services: result,
		Total:    len(result),
	}
}
