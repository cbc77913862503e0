package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhub/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/carhub/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidStoreID   = "некорректный ID автосервиса"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreNotFound    = "автосервис не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeIDStr := vars["storeId"]
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /stores/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stores/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(storeID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/available-slots - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stores/{id}/available-slots - Service not found: store_id=%d, service_id=%d",
				storeID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/available-slots - Invalid input: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /stores/{id}/available-slots - Failed to get slots: store_id=%d, service_id=%d, error=%v",
				storeID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stores/{id}/available-slots - Slots retrieved successfully: store_id=%d, service_id=%d, slots_count=%d",
		storeID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
