package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   BookingStatus
		to     BookingStatus
		wantOK bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"completed cannot be confirmed", StatusCompleted, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot be cancelled again", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.wantOK, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	completed := &Booking{Status: StatusCompleted}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.False(t, pending.IsTerminal())
	assert.False(t, confirmed.IsTerminal())
	assert.True(t, completed.IsTerminal())
	assert.True(t, cancelled.IsTerminal())

	// Отменённое бронирование уже не держит место в слоте
	assert.True(t, pending.IsActive())
	assert.True(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(StatusPending))
	assert.True(t, ValidBookingStatus(StatusConfirmed))
	assert.True(t, ValidBookingStatus(StatusCompleted))
	assert.True(t, ValidBookingStatus(StatusCancelled))
	assert.False(t, ValidBookingStatus("archived"))
	assert.False(t, ValidBookingStatus(""))
}
