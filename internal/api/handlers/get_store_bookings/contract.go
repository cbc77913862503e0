package get_store_bookings

import (
	"context"

	"github.com/carhub/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStoreBookings(ctx context.Context, req *models.GetStoreBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
