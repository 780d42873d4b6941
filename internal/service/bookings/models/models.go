package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// BookingResponse модель бронирования для внешних слоев
type BookingResponse struct {
	ID           int64
	CustomerID   int64
	ServiceID    int64
	SlotID       int64
	BookingDate  time.Time
	StartTime    string
	EndTime      string
	Address      string
	Instructions *string
	ServiceName  string
	TotalPrice   float64
	Status       string
	CancelledAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64
	Status     *string
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
}

// FromDomainBooking конвертирует доменное бронирование в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		ServiceID:    b.ServiceID,
		SlotID:       b.SlotID,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Address:      b.Address,
		Instructions: b.Instructions,
		ServiceName:  b.ServiceName,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в доменный статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidBookingStatus(status) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}
