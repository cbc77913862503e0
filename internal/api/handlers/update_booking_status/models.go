package update_booking_status

import (
	"github.com/carhub/booking-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
// Автор перехода не принимается из тела: его определяет
// аутентифицированный контекст запроса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берётся из аутентифицированного контекста, а не из тела запроса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
