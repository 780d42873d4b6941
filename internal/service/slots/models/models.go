package models

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// CreateSlotRequest запрос на создание слота администратором
type CreateSlotRequest struct {
	Date         time.Time
	StartTime    string
	EndTime      string
	MaxOccupancy int
	Enabled      *bool // nil = true
}

// SetEnabledRequest запрос на массовое включение/выключение слотов
type SetEnabledRequest struct {
	SlotIDs []int64
	Enabled bool
}

// SlotResponse модель слота для внешних слоев
type SlotResponse struct {
	ID               int64
	Date             time.Time
	StartTime        string
	EndTime          string
	MaxOccupancy     int
	CurrentOccupancy int
	RemainingSeats   int
	Enabled          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Date  time.Time
	Slots []SlotResponse
}

// FromDomainSlot конвертирует доменный слот в response-модель
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:               s.ID,
		Date:             s.SlotDate,
		StartTime:        s.StartTime.String(),
		EndTime:          s.EndTime.String(),
		MaxOccupancy:     s.MaxOccupancy,
		CurrentOccupancy: s.CurrentOccupancy,
		RemainingSeats:   s.RemainingSeats(),
		Enabled:          s.Enabled,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список доменных слотов
func FromDomainSlotList(date time.Time, slots []*domain.Slot) *SlotListResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, *FromDomainSlot(s))
	}
	return &SlotListResponse{Date: date, Slots: result}
}
