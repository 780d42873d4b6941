package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

type fakeSlotStore struct {
	count         int
	slots         []*domain.Slot
	generateCalls int
	generatedWith domain.SlotTemplate
}

func (f *fakeSlotStore) CountByDate(_ context.Context, _ time.Time) (int, error) {
	return f.count, nil
}

func (f *fakeSlotStore) GenerateDefaults(_ context.Context, date time.Time, template domain.SlotTemplate) error {
	f.generateCalls++
	f.generatedWith = template

	// Эмулируем материализацию стандартной сетки
	windows, err := template.Windows()
	if err != nil {
		return err
	}
	for i, w := range windows {
		f.slots = append(f.slots, &domain.Slot{
			ID:           int64(i + 1),
			SlotDate:     date,
			StartTime:    w.Start,
			EndTime:      w.End,
			MaxOccupancy: template.MaxOccupancy,
			Enabled:      true,
		})
	}
	return nil
}

func (f *fakeSlotStore) ListOpenByDate(_ context.Context, _ time.Time) ([]*domain.Slot, error) {
	var open []*domain.Slot
	for _, s := range f.slots {
		if s.IsOpen() {
			open = append(open, s)
		}
	}
	return open, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func testTemplate() domain.SlotTemplate {
	return domain.SlotTemplate{
		DayStart:      types.TimeString(domain.DefaultDayStart),
		DayEnd:        types.TimeString(domain.DefaultDayEnd),
		WindowMinutes: domain.DefaultWindowMinutes,
		MaxOccupancy:  domain.DefaultMaxOccupancy,
	}
}

func TestExecute_GeneratesDefaultsWhenDateIsEmpty(t *testing.T) {
	store := &fakeSlotStore{count: 0}
	uc := NewUseCase(store, testTemplate(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// Первый запрос на дату материализует стандартную сетку
	assert.Equal(t, 1, store.generateCalls)
	assert.Equal(t, testTemplate(), store.generatedWith)

	require.Len(t, resp.Slots, 5)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
	assert.Equal(t, "16:00", resp.Slots[4].StartTime)
	assert.Equal(t, "18:00", resp.Slots[4].EndTime)

	for _, s := range resp.Slots {
		assert.Equal(t, domain.DefaultMaxOccupancy, s.RemainingSeats)
		assert.Equal(t, domain.DefaultMaxOccupancy, s.TotalSeats)
	}
}

func TestExecute_SkipsGenerationWhenSlotsExist(t *testing.T) {
	store := &fakeSlotStore{
		count: 2,
		slots: []*domain.Slot{
			{ID: 1, SlotDate: testDate, StartTime: "08:00", EndTime: "10:00", MaxOccupancy: 3, CurrentOccupancy: 1, Enabled: true},
			{ID: 2, SlotDate: testDate, StartTime: "10:00", EndTime: "12:00", MaxOccupancy: 3, CurrentOccupancy: 3, Enabled: true},
		},
	}
	uc := NewUseCase(store, testTemplate(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// Слоты уже есть - генерации не происходит, даже если часть заполнена
	assert.Zero(t, store.generateCalls)

	// Заполненный слот не попадает в выдачу
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(1), resp.Slots[0].SlotID)
	assert.Equal(t, 2, resp.Slots[0].RemainingSeats)
}

func TestExecute_DisabledSlotsAreHidden(t *testing.T) {
	store := &fakeSlotStore{
		count: 1,
		slots: []*domain.Slot{
			{ID: 1, SlotDate: testDate, StartTime: "08:00", EndTime: "10:00", MaxOccupancy: 3, Enabled: false},
		},
	}
	uc := NewUseCase(store, testTemplate(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeSlotStore{}, testTemplate(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
