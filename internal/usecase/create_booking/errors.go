package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrSlotNotAvailable возвращается, когда слот недоступен:
	// заполнен, выключен или не существует
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается, когда дата бронирования не совпадает
	// с датой слота или лежит в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
