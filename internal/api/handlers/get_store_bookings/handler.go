package get_store_bookings

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
	msgInvalidStoreID = "некорректный ID автосервиса"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgStoreNotFound  = "автосервис не найден"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/stores/{storeId}/bookings
// Query params: status, date, from, to, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/bookings - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stores/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		storeID,
		userID,
		query.Get("status"),
		query.Get("date"),
		query.Get("from"),
		query.Get("to"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования автосервиса (сервис сам проверит права владельца)
	result, err := h.service.GetStoreBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/bookings - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /stores/{id}/bookings - Access denied: store_id=%d, user_id=%d",
				storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/bookings - Invalid filter: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /stores/{id}/bookings - Failed to get bookings: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/bookings - Bookings retrieved successfully: store_id=%d, count=%d",
		storeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
