package get_services

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/service/catalog/models"
)

// ServiceListResponse HTTP response model со списком услуг
type ServiceListResponse struct {
	Services []Service `json:"services"`
	Total    int       `json:"total"`
}

// Service модель услуги в каталоге
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceListResponse) *ServiceListResponse {
	services := make([]Service, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			BasePrice:       s.BasePrice,
			DurationMinutes: s.DurationMinutes,
			Category:        s.Category,
			Active:          s.Active,
			CreatedAt:       s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &ServiceListResponse{
		Services: services,
		Total:    resp.Total,
	}
}
