package get_customer_bookings

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"serviceId"`
	SlotID      int64   `json:"slotId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Address     string  `json:"address"`
	ServiceName string  `json:"serviceName"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// BookingListResponse HTTP response model со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	result := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		result[i] = BookingResponse{
			ID:          b.ID,
			ServiceID:   b.ServiceID,
			SlotID:      b.SlotID,
			Date:        b.BookingDate.Format(domain.DateFormat),
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Address:     b.Address,
			ServiceName: b.ServiceName,
			TotalPrice:  b.TotalPrice,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    resp.Total,
	}
}
