package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком открытых слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Открытые слоты по возрастанию времени начала
}

// Slot модель открытого временного слота
type Slot struct {
	SlotID         int64  // ID слота
	StartTime      string // Время начала слота (например, "08:00")
	EndTime        string // Время конца слота (например, "10:00")
	RemainingSeats int    // Количество свободных мест
	TotalSeats     int    // Общее количество мест
}
