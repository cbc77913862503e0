package cancel_booking

import (
	"github.com/carhub/booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Инициатор отмены не принимается из тела: его определяет
// аутентифицированный контекст запроса
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берётся из аутентифицированного контекста, а не из тела запроса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: reason,
	}
}
