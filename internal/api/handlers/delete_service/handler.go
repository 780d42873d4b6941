package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgNotFound         = "услуга не найдена"
	msgServiceInUse     = "на услугу ссылаются бронирования, используйте деактивацию"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем serviceId из URL
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Удаляем услугу
	err = h.service.Delete(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /services/{id} - Service has bookings: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInUse)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
