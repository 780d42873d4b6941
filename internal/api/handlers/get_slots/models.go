package get_slots

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots/models"
)

// SlotListResponse HTTP response model со списком слотов
type SlotListResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель слота в административном списке
type Slot struct {
	ID               int64  `json:"id"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	MaxOccupancy     int    `json:"maxOccupancy"`
	CurrentOccupancy int    `json:"currentOccupancy"`
	RemainingSeats   int    `json:"remainingSeats"`
	Enabled          bool   `json:"enabled"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotListResponse) *SlotListResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			ID:               s.ID,
			StartTime:        s.StartTime,
			EndTime:          s.EndTime,
			MaxOccupancy:     s.MaxOccupancy,
			CurrentOccupancy: s.CurrentOccupancy,
			RemainingSeats:   s.RemainingSeats,
			Enabled:          s.Enabled,
			CreatedAt:        s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &SlotListResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
