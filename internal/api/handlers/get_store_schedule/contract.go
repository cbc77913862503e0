package get_store_schedule

import (
	"context"

	"github.com/carhub/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, storeID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
