package create_service

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		BasePrice:       r.BasePrice,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceResponse) *ServiceResponse {
	return &ServiceResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Description:     resp.Description,
		BasePrice:       resp.BasePrice,
		DurationMinutes: resp.DurationMinutes,
		Category:        resp.Category,
		Active:          resp.Active,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
