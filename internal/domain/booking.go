package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a cleaning-service reservation of one seat in one slot
type Booking struct {
	ID         int64
	CustomerID int64
	ServiceID  int64
	SlotID     int64

	// Denormalized copy of the slot window at booking time:
	// the slot row may be edited later, the booking keeps what was sold
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	Address      string
	Instructions *string

	// Denormalized snapshot of the service at booking time
	ServiceName string
	TotalPrice  float64

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds a seat in its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if the booking accepts no further transitions
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status machine allows moving to target.
// Forward path: pending -> confirmed -> completed.
// pending|confirmed -> cancelled. Terminal states accept nothing.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// ValidBookingStatus returns true for a known status value
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CustomerBookingsFilter фильтр для получения бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID int64          // Обязательный параметр
	Status     *BookingStatus // Фильтр по статусу (опционально)
	StartDate  *time.Time     // Начало периода (опционально)
	EndDate    *time.Time     // Конец периода (опционально)
}
