package bookings

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelIfActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// SlotStore интерфейс хранилища слотов (нужен только декремент занятости)
type SlotStore interface {
	DecrementOccupancy(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
