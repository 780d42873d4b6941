package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры слота"
	msgDuplicateSlot      = "слот с таким временным окном уже существует"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом даты)
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Создаем слот
	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrDuplicateSlot):
			h.logger.Warn("POST /slots - Duplicate slot window: date=%s, window=%s-%s",
				req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("POST /slots - Failed to create slot: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, date=%s, window=%s-%s",
		result.ID, req.Date, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
