package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhub/booking-service/internal/api/handlers"
	"github.com/carhub/booking-service/internal/api/middleware"
	"github.com/carhub/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "бронирование не может быть отменено"
	msgInvalidInput       = "некорректные данные запроса"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Инициатором отмены считается аутентифицированный пользователь
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := req.ToServiceRequest(userID)

	err = h.service.Cancel(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
