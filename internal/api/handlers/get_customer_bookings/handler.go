package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidStatus     = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{customerId}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetCustomerBookingsRequest{
		CustomerID: customerID,
		Status:     statusPtr,
	}

	// Получаем бронирования клиента
	result, err := h.service.GetCustomerBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{customerId}/bookings - Invalid status: customer_id=%d, status=%s",
				customerID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{customerId}/bookings - Failed to get bookings: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{customerId}/bookings - Bookings retrieved successfully: customer_id=%d, count=%d",
		customerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
