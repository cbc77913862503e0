package get_pending_count

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

// Handle GET /api/v1/stores/{storeId}/pending-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/pending-count - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stores/{id}/pending-count - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetPendingCount(r.Context(), storeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/pending-count - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /stores/{id}/pending-count - Access denied: store_id=%d, user_id=%d",
				storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /stores/{id}/pending-count - Failed to get pending count: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/pending-count - Pending count retrieved: store_id=%d, count=%d",
		storeID, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
