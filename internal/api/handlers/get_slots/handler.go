package get_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD)
// Возвращает все слоты на дату, включая выключенные и заполненные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем слоты
	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
