package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelErr      error
	updateStatuses []domain.BookingStatus
	cancelCalls    int
	deleteCalls    int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByCustomer(_ context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updateStatuses = append(f.updateStatuses, status)
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) CancelIfActive(_ context.Context, id int64) error {
	f.cancelCalls++
	if f.cancelErr != nil {
		return f.cancelErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = domain.StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.deleteCalls++
	delete(f.bookings, id)
	return nil
}

type fakeSlotStore struct {
	decrements   []int64
	decrementOK  bool
	decrementErr error
}

func (f *fakeSlotStore) DecrementOccupancy(_ context.Context, id int64) (bool, error) {
	f.decrements = append(f.decrements, id)
	if f.decrementErr != nil {
		return false, f.decrementErr
	}
	return f.decrementOK, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeBookingRepo, store *fakeSlotStore) *Service {
	return NewService(repo, store, &fakeTxManager{}, nopLogger{})
}

func pendingBooking(id, slotID int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		CustomerID: 7,
		ServiceID:  1,
		SlotID:     slotID,
		Status:     domain.StatusPending,
	}
}

func TestCancel_ReleasesSeatOnce(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: pendingBooking(1, 10),
	}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, []int64{10}, store.decrements)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	// Повторная отмена: статус уже терминальный, декремента не происходит
	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Len(t, store.decrements, 1)
}

func TestCancel_StatusConflictMapsToAlreadyTerminal(t *testing.T) {
	// Между чтением и условным UPDATE статус успел стать терминальным
	repo := &fakeBookingRepo{
		bookings:  map[int64]*domain.Booking{1: pendingBooking(1, 10)},
		cancelErr: bookingRepo.ErrStatusConflict,
	}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Empty(t, store.decrements)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_CompletedBooking(t *testing.T) {
	b := pendingBooking(1, 10)
	b.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Empty(t, store.decrements)
}

func TestCancel_SucceedsEvenIfOccupancyAlreadyZero(t *testing.T) {
	// Рассинхронизация занятости не должна блокировать отмену
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	store := &fakeSlotStore{decrementOK: false}
	svc := newTestService(repo, store)

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestCancel_DecrementErrorAbortsCancel(t *testing.T) {
	// Ошибка хранилища при декременте должна откатить всю отмену
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	store := &fakeSlotStore{decrementErr: errors.New("pq: connection reset")}
	svc := newTestService(repo, store)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []int64{10}, store.decrements)
}

func TestDelete_ActiveBookingReleasesSeat(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{10}, store.decrements)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDelete_CancelledBookingDoesNotReleaseSeat(t *testing.T) {
	b := pendingBooking(1, 10)
	b.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, store.decrements)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestUpdateStatus_ForwardTransitions(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"}))
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"}))
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestUpdateStatus_PendingToCompletedRejected(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestUpdateStatus_CancelledGoesThroughCancelPath(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	store := &fakeSlotStore{decrementOK: true}
	svc := newTestService(repo, store)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"}))

	// Перевод в cancelled освобождает место, как и прямая отмена
	assert.Equal(t, []int64{10}, store.decrements)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestUpdateStatus_TerminalRejectsEverything(t *testing.T) {
	b := pendingBooking(1, 10)
	b.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: pendingBooking(1, 10)}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_FiltersByStatus(t *testing.T) {
	cancelled := pendingBooking(2, 11)
	cancelled.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: pendingBooking(1, 10),
		2: cancelled,
	}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	status := "pending"
	result, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 7,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, int64(1), result.Bookings[0].ID)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	status := "archived"
	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 7,
		Status:     &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, &fakeSlotStore{decrementOK: true})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
