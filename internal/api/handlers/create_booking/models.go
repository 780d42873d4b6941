package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID    int64    `json:"serviceId"`
	SlotID       int64    `json:"slotId"`
	Date         string   `json:"date"` // "2026-09-15"
	Address      string   `json:"address"`
	Instructions *string  `json:"instructions,omitempty"`
	TotalPrice   *float64 `json:"totalPrice,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	ServiceID    int64   `json:"serviceId"`
	SlotID       int64   `json:"slotId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Address      string  `json:"address"`
	Instructions *string `json:"instructions,omitempty"`
	ServiceName  string  `json:"serviceName"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:   customerID,
		ServiceID:    r.ServiceID,
		SlotID:       r.SlotID,
		Date:         date,
		Address:      r.Address,
		Instructions: r.Instructions,
		TotalPrice:   r.TotalPrice,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		ServiceID:    resp.ServiceID,
		SlotID:       resp.SlotID,
		Date:         resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		Address:      resp.Address,
		Instructions: resp.Instructions,
		ServiceName:  resp.ServiceName,
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
