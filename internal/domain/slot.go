package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Slot represents a bookable time window on a specific calendar date.
// Invariant: 0 <= CurrentOccupancy <= MaxOccupancy, enforced by the store
// on every mutation (conditional UPDATE) and by a CHECK constraint.
type Slot struct {
	ID               int64
	SlotDate         time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	MaxOccupancy     int
	CurrentOccupancy int
	Enabled          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RemainingSeats returns the number of free seats in the slot
func (s *Slot) RemainingSeats() int {
	remaining := s.MaxOccupancy - s.CurrentOccupancy
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if the slot has no free seats
func (s *Slot) IsFull() bool {
	return s.CurrentOccupancy >= s.MaxOccupancy
}

// IsOpen returns true if the slot can accept another booking
func (s *Slot) IsOpen() bool {
	return s.Enabled && !s.IsFull()
}

// IsEmpty returns true if no active bookings hold seats in the slot
func (s *Slot) IsEmpty() bool {
	return s.CurrentOccupancy == 0
}
