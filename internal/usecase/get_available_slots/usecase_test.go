package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub/booking-service/internal/domain"
	scheduleRepo "github.com/carhub/booking-service/internal/infra/storage/schedule"
	catalogClient "github.com/carhub/booking-service/internal/integrations/catalogservice"
	"github.com/carhub/booking-service/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	getByStoreFn func(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) GetByStoreWithFilter(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error) {
	if f.getByStoreFn == nil {
		return nil, nil
	}
	return f.getByStoreFn(ctx, filter)
}

type fakeScheduleRepo struct {
	getDayFn func(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error)
}

func (f *fakeScheduleRepo) GetByStoreAndWeekday(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error) {
	if f.getDayFn == nil {
		panic("GetByStoreAndWeekday not configured")
	}
	return f.getDayFn(ctx, storeID, weekday)
}

type fakeCatalog struct {
	getStoreFn   func(ctx context.Context, storeID int64) (*catalogClient.Store, error)
	getServiceFn func(ctx context.Context, storeID, serviceID int64) (*catalogClient.Service, error)
}

func (f *fakeCatalog) GetStore(ctx context.Context, storeID int64) (*catalogClient.Store, error) {
	if f.getStoreFn == nil {
		return &catalogClient.Store{ID: storeID, Name: "Test Store", IsActive: true}, nil
	}
	return f.getStoreFn(ctx, storeID)
}

func (f *fakeCatalog) GetService(ctx context.Context, storeID, serviceID int64) (*catalogClient.Service, error) {
	if f.getServiceFn == nil {
		return &catalogClient.Service{ID: serviceID, StoreID: storeID, Name: "Oil change", DurationMinutes: 30}, nil
	}
	return f.getServiceFn(ctx, storeID, serviceID)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	schedRepo *fakeScheduleRepo,
	catalog *fakeCatalog,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, schedRepo, catalog, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // понедельник

	schedRepo := &fakeScheduleRepo{
		getDayFn: func(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error) {
			assert.Equal(t, time.Monday, weekday)
			return &domain.DaySchedule{
				StoreID:    storeID,
				Weekday:    weekday,
				OpenTime:   "09:00",
				CloseTime:  "17:00",
				BreakStart: timePtr("13:00"),
				BreakEnd:   timePtr("14:00"),
			}, nil
		},
	}
	bookingRepo := &fakeBookingRepo{
		getByStoreFn: func(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error) {
			assert.False(t, filter.IncludeInactive)
			return []*domain.Booking{
				{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
			}, nil
		},
	}

	uc := newTestUseCase(bookingRepo, schedRepo, &fakeCatalog{}, now)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StoreID)
	assert.Equal(t, int64(2), resp.ServiceID)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)

	assert.Equal(t, Slot{StartTime: "09:00", EndTime: "09:30"}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "16:30", EndTime: "17:00"}, resp.Slots[len(resp.Slots)-1])

	// Занятое время отсутствует в выдаче
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("09:45"), slot.StartTime)
	}
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // воскресенье

	schedRepo := &fakeScheduleRepo{
		getDayFn: func(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error) {
			return nil, scheduleRepo.ErrDayNotFound
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, schedRepo, &fakeCatalog{}, now)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StoreNotFound(t *testing.T) {
	catalog := &fakeCatalog{
		getStoreFn: func(ctx context.Context, storeID int64) (*catalogClient.Store, error) {
			return nil, catalogClient.ErrStoreNotFound
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, catalog, time.Now())

	_, err := uc.Execute(context.Background(), &Request{StoreID: 99, ServiceID: 2, Date: time.Now().AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &fakeCatalog{
		getServiceFn: func(ctx context.Context, storeID, serviceID int64) (*catalogClient.Service, error) {
			return nil, catalogClient.ErrServiceNotFound
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, catalog, time.Now())

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceID: 99, Date: time.Now().AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalog{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{StoreID: 0, ServiceID: 2, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StoreID: 1, ServiceID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StoreID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrappedAsInternal(t *testing.T) {
	schedRepo := &fakeScheduleRepo{
		getDayFn: func(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error) {
			return &domain.DaySchedule{Weekday: weekday, OpenTime: "09:00", CloseTime: "18:00"}, nil
		},
	}
	bookingRepo := &fakeBookingRepo{
		getByStoreFn: func(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := newTestUseCase(bookingRepo, schedRepo, &fakeCatalog{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		StoreID:   1,
		ServiceID: 2,
		Date:      time.Now().AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
