package get_pending_count

import (
	"context"

	"github.com/carhub/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetPendingCount(ctx context.Context, storeID int64, userID int64) (*models.PendingCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
