package create_slot

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots/models"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date         string `json:"date"`      // "2026-09-15"
	StartTime    string `json:"startTime"` // "08:00"
	EndTime      string `json:"endTime"`   // "10:00"
	MaxOccupancy int    `json:"maxOccupancy"`
	Enabled      *bool  `json:"enabled,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	MaxOccupancy     int    `json:"maxOccupancy"`
	CurrentOccupancy int    `json:"currentOccupancy"`
	RemainingSeats   int    `json:"remainingSeats"`
	Enabled          bool   `json:"enabled"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest() (*models.CreateSlotRequest, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		Date:         date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		MaxOccupancy: r.MaxOccupancy,
		Enabled:      r.Enabled,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:               resp.ID,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime,
		EndTime:          resp.EndTime,
		MaxOccupancy:     resp.MaxOccupancy,
		CurrentOccupancy: resp.CurrentOccupancy,
		RemainingSeats:   resp.RemainingSeats,
		Enabled:          resp.Enabled,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
