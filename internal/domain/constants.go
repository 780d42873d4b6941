package domain

// Default slot template values (five 2-hour windows across a business day)
const (
	DefaultDayStart      = "08:00"
	DefaultDayEnd        = "18:00"
	DefaultWindowMinutes = 120
	DefaultMaxOccupancy  = 3
)

// Business validation constants
const (
	MinWindowMinutes      = 30
	MaxWindowMinutes      = 480 // 8 hours
	MinOccupancy          = 1
	MaxOccupancy          = 50
	MaxAddressLength      = 300
	MaxInstructionsLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
