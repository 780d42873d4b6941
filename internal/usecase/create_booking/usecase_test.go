package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CleaningService/pkg/ptr"
)

type fakeBookingRepo struct {
	created   []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *b
	copied.ID = int64(len(f.created) + 1)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.created = append(f.created, &copied)
	return &copied, nil
}

type fakeSlotStore struct {
	slot        *domain.Slot
	incrementOK bool
	increments  []int64
}

func (f *fakeSlotStore) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *f.slot
	return &copied, nil
}

func (f *fakeSlotStore) IncrementOccupancy(_ context.Context, id int64) (bool, error) {
	f.increments = append(f.increments, id)
	if !f.incrementOK {
		return false, nil
	}
	f.slot.CurrentOccupancy++
	return true, nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *f.service
	return &copied, nil
}

// fakeTxManager эмулирует транзакционность: при ошибке из fn состояние
// слота возвращается к снимку, сделанному перед началом
type fakeTxManager struct {
	slots *fakeSlotStore
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var snapshot *domain.Slot
	if f.slots != nil && f.slots.slot != nil {
		copied := *f.slots.slot
		snapshot = &copied
	}

	err := fn(ctx)
	if err != nil && f.slots != nil {
		f.slots.slot = snapshot
	}
	return err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func testSlot() *domain.Slot {
	return &domain.Slot{
		ID:               10,
		SlotDate:         testDate,
		StartTime:        "08:00",
		EndTime:          "10:00",
		MaxOccupancy:     3,
		CurrentOccupancy: 1,
		Enabled:          true,
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              1,
		Name:            "Генеральная уборка",
		BasePrice:       5000,
		DurationMinutes: 120,
		Active:          true,
	}
}

func testRequest() *Request {
	return &Request{
		CustomerID: 7,
		ServiceID:  1,
		SlotID:     10,
		Date:       testDate,
		Address:    "ул. Ленина, д. 1",
	}
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotStore, services *fakeServiceRepo) *UseCase {
	uc := NewUseCase(bookings, slots, services, &fakeTxManager{slots: slots}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotStore{slot: testSlot(), incrementOK: true}
	services := &fakeServiceRepo{service: testService()}
	uc := newTestUseCase(bookings, slots, services)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Место занято, бронирование создано со снимком слота и услуги
	assert.Equal(t, []int64{10}, slots.increments)
	require.Len(t, bookings.created, 1)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, "Генеральная уборка", resp.ServiceName)
	assert.Equal(t, 5000.0, resp.TotalPrice)
	assert.Equal(t, testDate, resp.BookingDate)
}

func TestExecute_ExplicitPriceOverridesBase(t *testing.T) {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotStore{slot: testSlot(), incrementOK: true}
	services := &fakeServiceRepo{service: testService()}
	uc := newTestUseCase(bookings, slots, services)

	req := testRequest()
	req.TotalPrice = ptr.Ptr(6500.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6500.0, resp.TotalPrice)
}

func TestExecute_SlotFull(t *testing.T) {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotStore{slot: testSlot(), incrementOK: false}
	services := &fakeServiceRepo{service: testService()}
	uc := newTestUseCase(bookings, slots, services)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Инкремент не прошёл - вставки бронирования быть не должно
	assert.Empty(t, bookings.created)
}

func TestExecute_FailedInsertLeavesNoOccupancy(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: errors.New("pq: connection reset")}
	slots := &fakeSlotStore{slot: testSlot(), incrementOK: true}
	services := &fakeServiceRepo{service: testService()}
	uc := newTestUseCase(bookings, slots, services)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)

	// Ошибка вставки выходит из транзакции, и откат убирает инкремент:
	// фантомной занятости не остаётся
	assert.Equal(t, []int64{10}, slots.increments)
	assert.Equal(t, 1, slots.slot.CurrentOccupancy)
	assert.Empty(t, bookings.created)
}

func TestExecute_SlotMissing(t *testing.T) {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotStore{slot: nil, incrementOK: true}
	services := &fakeServiceRepo{service: testService()}
	uc := newTestUseCase(bookings, slots, services)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, slots.increments)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotStore{slot: testSlot(), incrementOK: true}, &fakeServiceRepo{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceInactive(t *testing.T) {
	service := testService()
	service.Active = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotStore{slot: testSlot(), incrementOK: true}, &fakeServiceRepo{service: service})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_DateMismatch(t *testing.T) {
	slots := &fakeSlotStore{slot: testSlot(), incrementOK: true}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeServiceRepo{service: testService()})

	req := testRequest()
	req.Date = testDate.AddDate(0, 0, 1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, slots.increments)
}

func TestExecute_SlotDateInPast(t *testing.T) {
	slot := testSlot()
	slot.SlotDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	slots := &fakeSlotStore{slot: slot, incrementOK: true}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeServiceRepo{service: testService()})

	req := testRequest()
	req.Date = slot.SlotDate

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, slots.increments)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotStore{slot: testSlot(), incrementOK: true}, &fakeServiceRepo{service: testService()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero slot", func(r *Request) { r.SlotID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty address", func(r *Request) { r.Address = "" }},
		{"negative price", func(r *Request) { r.TotalPrice = ptr.Ptr(-1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
