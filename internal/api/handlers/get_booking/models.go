package get_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

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
	CancelledAt  *string `json:"cancelledAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

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
		CancelledAt:  cancelledAt,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
