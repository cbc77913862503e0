package update_store_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhub/booking-service/internal/api/handlers"
	"github.com/carhub/booking-service/internal/api/middleware"
	"github.com/carhub/booking-service/internal/service/schedule"
)

const (
	msgInvalidStoreID     = "некорректный ID автосервиса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStoreNotFound      = "автосервис не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidSchedule    = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stores/{storeId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stores/{id}/schedule - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Изменять расписание может только аутентифицированный владелец
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /stores/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), storeID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStoreNotFound):
			h.logger.Warn("PUT /stores/{id}/schedule - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /stores/{id}/schedule - Access denied: store_id=%d, user_id=%d",
				storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /stores/{id}/schedule - Invalid schedule: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /stores/{id}/schedule - Failed to replace schedule: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stores/{id}/schedule - Schedule replaced successfully: store_id=%d, days=%d",
		storeID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
