package create_booking

import (
	"context"
	"time"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetByStoreAndWeekday(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error)
}

// CatalogClient интерфейс клиента каталога маркетплейса
type CatalogClient interface {
	GetStore(ctx context.Context, storeID int64) (*catalogservice.Store, error)
	GetService(ctx context.Context, storeID, serviceID int64) (*catalogservice.Service, error)
}

// PendingCounter интерфейс счётчика pending-бронирований владельца
type PendingCounter interface {
	Incr(ctx context.Context, storeID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
