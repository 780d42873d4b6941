package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

func defaultTemplate() SlotTemplate {
	return SlotTemplate{
		DayStart:      types.TimeString(DefaultDayStart),
		DayEnd:        types.TimeString(DefaultDayEnd),
		WindowMinutes: DefaultWindowMinutes,
		MaxOccupancy:  DefaultMaxOccupancy,
	}
}

func TestTemplateWindows_Default(t *testing.T) {
	windows, err := defaultTemplate().Windows()
	require.NoError(t, err)

	// Пять двухчасовых окон с 08:00 до 18:00
	require.Len(t, windows, 5)

	expected := []SlotWindow{
		{Start: "08:00", End: "10:00"},
		{Start: "10:00", End: "12:00"},
		{Start: "12:00", End: "14:00"},
		{Start: "14:00", End: "16:00"},
		{Start: "16:00", End: "18:00"},
	}
	assert.Equal(t, expected, windows)
}

func TestTemplateWindows_PartialLastWindowDropped(t *testing.T) {
	tmpl := defaultTemplate()
	tmpl.DayEnd = "17:00"

	windows, err := tmpl.Windows()
	require.NoError(t, err)

	// 16:00-18:00 не влезает в день, окно отбрасывается целиком
	require.Len(t, windows, 4)
	assert.Equal(t, types.TimeString("16:00"), windows[len(windows)-1].End)
}

func TestTemplateWindows_SingleWindow(t *testing.T) {
	tmpl := SlotTemplate{
		DayStart:      "09:00",
		DayEnd:        "10:30",
		WindowMinutes: 90,
		MaxOccupancy:  1,
	}

	windows, err := tmpl.Windows()
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, SlotWindow{Start: "09:00", End: "10:30"}, windows[0])
}

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SlotTemplate)
		wantErr bool
	}{
		{"default is valid", func(*SlotTemplate) {}, false},
		{"bad day start", func(tmpl *SlotTemplate) { tmpl.DayStart = "8am" }, true},
		{"bad day end", func(tmpl *SlotTemplate) { tmpl.DayEnd = "25:00" }, true},
		{"start after end", func(tmpl *SlotTemplate) { tmpl.DayStart = "19:00" }, true},
		{"zero window", func(tmpl *SlotTemplate) { tmpl.WindowMinutes = 0 }, true},
		{"negative window", func(tmpl *SlotTemplate) { tmpl.WindowMinutes = -30 }, true},
		{"window fills day exactly", func(tmpl *SlotTemplate) { tmpl.WindowMinutes = 600 }, false},
		{"window exceeds day span", func(tmpl *SlotTemplate) { tmpl.WindowMinutes = 601 }, true},
		{"zero occupancy", func(tmpl *SlotTemplate) { tmpl.MaxOccupancy = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := defaultTemplate()
			tt.mutate(&tmpl)

			err := tmpl.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
