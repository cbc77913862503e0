package create_booking

import (
	"errors"
	"net/http"

	"github.com/carhub/booking-service/internal/api/handlers"
	"github.com/carhub/booking-service/internal/api/middleware"
	createBooking "github.com/carhub/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgStoreNotFound      = "автосервис не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgStoreClosed        = "автосервис закрыт в выбранную дату"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
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
	// Клиентом считается аутентифицированный пользователь (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, store_id=%d", userID, req.StoreID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStoreNotFound):
			h.logger.Warn("POST /bookings - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: store_id=%d, service_id=%d", req.StoreID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStoreClosed):
			h.logger.Warn("POST /bookings - Store closed: user_id=%d, store_id=%d", userID, req.StoreID)
			handlers.RespondBadRequest(w, msgStoreClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, store_id=%d", userID, req.StoreID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, store_id=%d", userID, req.StoreID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, store_id=%d", userID, req.StoreID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, store_id=%d, error=%v", userID, req.StoreID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, store_id=%d, error=%v",
				userID, req.StoreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, store_id=%d",
		result.ID, userID, req.StoreID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
