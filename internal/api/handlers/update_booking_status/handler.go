package update_booking_status

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
	msgInvalidStatus      = "некорректный статус бронирования"
	msgInvalidTransition  = "недопустимый переход между статусами"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Переход статуса выполняет аутентифицированный пользователь
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), bookingID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated successfully: booking_id=%d, status=%s, user_id=%d",
		bookingID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
