package domain

import "time"

// Service represents a bookable cleaning offering.
// Price and active-flag changes never retroactively alter existing bookings:
// bookings carry their own snapshot of name and price.
type Service struct {
	ID              int64
	Name            string
	Description     string
	BasePrice       float64
	DurationMinutes int
	Category        string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if new bookings may reference the service
func (s *Service) IsBookable() bool {
	return s.Active
}
