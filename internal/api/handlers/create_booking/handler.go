package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUser        = "не удалось определить пользователя"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга недоступна для бронирования"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ID клиента, положенный auth middleware
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: customer_id=%d, slot_id=%d", customerID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: customer_id=%d, service_id=%d", customerID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: customer_id=%d, service_id=%d", customerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: customer_id=%d, slot_id=%d", customerID, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, slot_id=%d, error=%v",
				customerID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, slot_id=%d",
		result.ID, customerID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
