package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// SlotTemplate is the fixed set of time windows materialized for a date the
// first time availability is queried and no slots exist yet.
// The canonical template (five 2-hour windows, 08:00-18:00) comes from
// configuration; this type only derives the windows.
type SlotTemplate struct {
	DayStart      types.TimeString
	DayEnd        types.TimeString
	WindowMinutes int
	MaxOccupancy  int
}

// SlotWindow is a single (start, end) pair produced by a template
type SlotWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate checks that the template can produce at least one window
func (t SlotTemplate) Validate() error {
	if err := t.DayStart.Validate(); err != nil {
		return fmt.Errorf("slot template: day start: %w", err)
	}
	if err := t.DayEnd.Validate(); err != nil {
		return fmt.Errorf("slot template: day end: %w", err)
	}
	if !t.DayStart.IsBefore(t.DayEnd) {
		return fmt.Errorf("slot template: day start %s must be before day end %s", t.DayStart, t.DayEnd)
	}
	if t.WindowMinutes <= 0 {
		return fmt.Errorf("slot template: window minutes must be positive, got %d", t.WindowMinutes)
	}
	// A template with no windows would materialize empty days
	firstEnd, err := t.DayStart.AddMinutes(t.WindowMinutes)
	if err != nil || firstEnd.IsAfter(t.DayEnd) {
		return fmt.Errorf("slot template: %d minute window does not fit between %s and %s", t.WindowMinutes, t.DayStart, t.DayEnd)
	}
	if t.MaxOccupancy < 1 {
		return fmt.Errorf("slot template: max occupancy must be at least 1, got %d", t.MaxOccupancy)
	}
	return nil
}

// Windows derives the template's time windows: back-to-back fixed-size
// windows from DayStart, the last one ending no later than DayEnd
func (t SlotTemplate) Windows() ([]SlotWindow, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	windows := make([]SlotWindow, 0)
	current := t.DayStart

	for current.IsBefore(t.DayEnd) {
		end, err := current.AddMinutes(t.WindowMinutes)
		if err != nil {
			break
		}
		if end.IsAfter(t.DayEnd) {
			break
		}

		windows = append(windows, SlotWindow{Start: current, End: end})
		current = end
	}

	return windows, nil
}
