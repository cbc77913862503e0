package schedule

import (
	"context"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetByStore(ctx context.Context, storeID int64) (domain.WeekSchedule, error)
	ReplaceForStore(ctx context.Context, storeID int64, week domain.WeekSchedule) error
}

// CatalogClient интерфейс клиента каталога маркетплейса
type CatalogClient interface {
	GetStore(ctx context.Context, storeID int64) (*catalogservice.Store, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
