package update_store_schedule

import (
	"github.com/carhub/booking-service/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
// Автор изменения не принимается из тела: его определяет
// аутентифицированный контекст запроса
type UpdateScheduleRequest struct {
	Days []models.DayScheduleRequest `json:"days"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берётся из аутентифицированного контекста, а не из тела запроса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID: userID,
		Days:   r.Days,
	}
}
