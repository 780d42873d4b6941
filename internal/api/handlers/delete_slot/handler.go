package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgNotFound      = "слот не найден"
	msgSlotNotEmpty  = "слот содержит активные бронирования"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем slotId из URL
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Удаляем слот
	err = h.service.Delete(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrSlotNotEmpty):
			h.logger.Warn("DELETE /slots/{id} - Slot has active bookings: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotEmpty)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
