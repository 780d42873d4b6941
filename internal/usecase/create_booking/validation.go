package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if req.Instructions != nil && len(*req.Instructions) > domain.MaxInstructionsLength {
		return fmt.Errorf("%w: instructions are too long", ErrInvalidInput)
	}

	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что запрошенная дата совпадает с датой слота
// и не лежит в прошлом
func validateDate(requested, slotDate, now time.Time) error {
	if !isSameDay(requested, slotDate) {
		return fmt.Errorf("%w: requested date %s does not match slot date %s",
			ErrInvalidDate, requested.Format(domain.DateFormat), slotDate.Format(domain.DateFormat))
	}

	if isDateInPast(slotDate, now) {
		return fmt.Errorf("%w: slot date %s is in the past",
			ErrInvalidDate, slotDate.Format(domain.DateFormat))
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
