package bookings

import (
	"context"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// CatalogClient интерфейс клиента каталога маркетплейса
type CatalogClient interface {
	GetStore(ctx context.Context, storeID int64) (*catalogservice.Store, error)
}

// PendingCounter интерфейс счётчика pending-бронирований автосервиса
type PendingCounter interface {
	Decr(ctx context.Context, storeID int64) error
	Get(ctx context.Context, storeID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
