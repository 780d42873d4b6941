package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrDuplicateSlot возвращается при попытке создать включенный слот
	// с уже существующим окном (date, start, end)
	ErrDuplicateSlot = errors.New("slot.repository: duplicate slot window")

	// ErrSlotNotEmpty возвращается при попытке удалить слот с активными бронированиями
	ErrSlotNotEmpty = errors.New("slot.repository: slot has active bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
