package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots/models"
	"github.com/m04kA/SMC-CleaningService/pkg/ptr"
)

type fakeSlotStore struct {
	created       []*domain.Slot
	createErr     error
	setEnabledErr error
	deleteErr     error
	slots         []*domain.Slot
	toggled       []int64
}

func (f *fakeSlotStore) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *s
	copied.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeSlotStore) SetEnabled(_ context.Context, ids []int64, _ bool) (int64, error) {
	if f.setEnabledErr != nil {
		return 0, f.setEnabledErr
	}
	f.toggled = append(f.toggled, ids...)
	return int64(len(ids)), nil
}

func (f *fakeSlotStore) DeleteIfEmpty(_ context.Context, _ int64) error {
	return f.deleteErr
}

func (f *fakeSlotStore) ListByDate(_ context.Context, _ time.Time) ([]*domain.Slot, error) {
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func validCreateRequest() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		Date:         testDate,
		StartTime:    "08:00",
		EndTime:      "10:00",
		MaxOccupancy: 3,
	}
}

func TestCreate_Success(t *testing.T) {
	store := &fakeSlotStore{}
	svc := NewService(store, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, 3, resp.MaxOccupancy)
	assert.Equal(t, 3, resp.RemainingSeats)
	assert.True(t, resp.Enabled)
}

func TestCreate_DisabledByRequest(t *testing.T) {
	store := &fakeSlotStore{}
	svc := NewService(store, nopLogger{})

	req := validCreateRequest()
	req.Enabled = ptr.Ptr(false)

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Enabled)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeSlotStore{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.CreateSlotRequest)
	}{
		{"zero date", func(r *models.CreateSlotRequest) { r.Date = time.Time{} }},
		{"bad start time", func(r *models.CreateSlotRequest) { r.StartTime = "8am" }},
		{"bad end time", func(r *models.CreateSlotRequest) { r.EndTime = "26:00" }},
		{"start equals end", func(r *models.CreateSlotRequest) { r.EndTime = r.StartTime }},
		{"start after end", func(r *models.CreateSlotRequest) { r.StartTime = "12:00"; r.EndTime = "10:00" }},
		{"zero occupancy", func(r *models.CreateSlotRequest) { r.MaxOccupancy = 0 }},
		{"occupancy above limit", func(r *models.CreateSlotRequest) { r.MaxOccupancy = domain.MaxOccupancy + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateWindow(t *testing.T) {
	store := &fakeSlotStore{createErr: slotRepo.ErrDuplicateSlot}
	svc := NewService(store, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestSetEnabled(t *testing.T) {
	store := &fakeSlotStore{}
	svc := NewService(store, nopLogger{})

	affected, err := svc.SetEnabled(context.Background(), &models.SetEnabledRequest{
		SlotIDs: []int64{1, 2, 3},
		Enabled: false,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.Equal(t, []int64{1, 2, 3}, store.toggled)
}

func TestSetEnabled_EmptyIDs(t *testing.T) {
	svc := NewService(&fakeSlotStore{}, nopLogger{})

	_, err := svc.SetEnabled(context.Background(), &models.SetEnabledRequest{Enabled: true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Errors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{"not found", slotRepo.ErrSlotNotFound, ErrSlotNotFound},
		{"has bookings", slotRepo.ErrSlotNotEmpty, ErrSlotNotEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSlotStore{deleteErr: tt.storeErr}, nopLogger{})
			err := svc.Delete(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListByDate_IncludesDisabledAndFull(t *testing.T) {
	store := &fakeSlotStore{slots: []*domain.Slot{
		{ID: 1, SlotDate: testDate, StartTime: "08:00", EndTime: "10:00", MaxOccupancy: 3, CurrentOccupancy: 3, Enabled: true},
		{ID: 2, SlotDate: testDate, StartTime: "10:00", EndTime: "12:00", MaxOccupancy: 3, Enabled: false},
	}}
	svc := NewService(store, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), testDate)
	require.NoError(t, err)

	// Административный список показывает всё, в отличие от публичной выдачи
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 0, resp.Slots[0].RemainingSeats)
	assert.False(t, resp.Slots[1].Enabled)
}
