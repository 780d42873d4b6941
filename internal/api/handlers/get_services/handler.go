package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
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

// Handle GET /api/v1/services
// Query params: includeInactive (опционально, "true" для полного каталога)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	// Получаем список услуг
	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
