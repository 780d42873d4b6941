package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   int64     // ID клиента (из сессии UI-слоя)
	ServiceID    int64     // ID услуги
	SlotID       int64     // ID слота
	Date         time.Time // Дата бронирования (должна совпадать с датой слота)
	Address      string    // Адрес уборки
	Instructions *string   // Особые указания (опционально)
	TotalPrice   *float64  // Цена (опционально; по умолчанию базовая цена услуги)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	ServiceID  int64
	SlotID     int64

	// Денормализованная копия окна слота на момент бронирования
	BookingDate time.Time
	StartTime   string
	EndTime     string

	Address      string
	Instructions *string

	// Снимок услуги на момент бронирования
	ServiceName string
	TotalPrice  float64

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
