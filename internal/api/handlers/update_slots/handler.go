package update_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "список ID слотов обязателен"
	msgDuplicateSlot      = "включение создаст дубликат временного окна"
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

// Handle PATCH /api/v1/slots/enabled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetEnabledRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/enabled - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Переключаем слоты
	affected, err := h.service.SetEnabled(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/enabled - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrDuplicateSlot):
			h.logger.Warn("PATCH /slots/enabled - Enabling would duplicate a window")
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("PATCH /slots/enabled - Failed to toggle slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/enabled - Slots toggled successfully: count=%d, enabled=%t",
		affected, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, SetEnabledResponse{Affected: affected})
}
