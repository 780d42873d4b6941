package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrDuplicateSlot возвращается, когда включенный слот с таким окном уже существует
	ErrDuplicateSlot = errors.New("slot with this window already exists")

	// ErrSlotNotEmpty возвращается при попытке удалить слот с активными бронированиями
	ErrSlotNotEmpty = errors.New("slot has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
