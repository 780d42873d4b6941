package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CleaningService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	SlotID         int64  `json:"slotId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	RemainingSeats int    `json:"remainingSeats"`
	TotalSeats     int    `json:"totalSeats"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotID:         slot.SlotID,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			RemainingSeats: slot.RemainingSeats,
			TotalSeats:     slot.TotalSeats,
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
