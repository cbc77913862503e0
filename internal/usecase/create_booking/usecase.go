package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/internal/infra/storage/schedule"
	"github.com/carhub/booking-service/internal/integrations/catalogservice"
	"github.com/carhub/booking-service/pkg/ptr"
)

// UseCase создаёт бронирование с проверкой конфликтов
//
// Расчёт доступных слотов носит рекомендательный характер: между показом
// слотов клиенту и подтверждением проходит время, за которое слот может
// занять другой клиент. Единственная достоверная проверка выполняется
// здесь — внутри сериализуемой транзакции с блокировкой строк дня
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalog      CatalogClient
	counter      PendingCounter
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalog CatalogClient,
	counter PendingCounter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		counter:      counter,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создаёт бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, store=%d, service=%d, date=%s, time=%s",
		req.UserID, req.StoreID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Проверяем существование автосервиса и услуги до открытия транзакции:
	// походы во внешний сервис внутри транзакции удерживали бы блокировки
	store, err := uc.catalog.GetStore(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateBooking: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	service, err := uc.catalog.GetService(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Error("CreateBooking: service id=%d has invalid duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has invalid duration", ErrInternal)
	}

	if err := validateDate(req.Date, now); err != nil {
		return nil, err
	}

	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		return nil, err
	}

	var created *domain.Booking

	// Сериализуемая транзакция: повторная проверка занятости и вставка
	// выполняются атомарно, SELECT ... FOR UPDATE блокирует строки дня
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day, err := uc.scheduleRepo.GetByStoreAndWeekday(txCtx, req.StoreID, req.Date.Weekday())
		if err != nil {
			if errors.Is(err, schedule.ErrDayNotFound) {
				return ErrStoreClosed
			}
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if err := validateSlotWithinSchedule(day, req.StartTime, service.DurationMinutes); err != nil {
			return err
		}

		bookings, err := uc.bookingRepo.GetByStoreWithFilter(txCtx, domain.StoreBookingsFilter{
			StoreID:   req.StoreID,
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		overlapping, err := countOverlappingBookings(req.StartTime, service.DurationMinutes, bookings)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			UserID:          req.UserID,
			StoreID:         req.StoreID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.PriceOrZero(),
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Счётчик pending обновляется вне транзакции и только best-effort:
	// сбой Redis не должен откатывать уже созданное бронирование
	if err := uc.counter.Incr(ctx, req.StoreID); err != nil {
		uc.logger.Warn("CreateBooking: failed to increment pending counter for store=%d: %v", req.StoreID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d at store %q (%d)",
		created.ID, created.UserID, store.Name, created.StoreID)

	endTime, err := created.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		ID:              created.ID,
		UserID:          created.UserID,
		StoreID:         created.StoreID,
		ServiceID:       created.ServiceID,
		BookingDate:     created.BookingDate,
		StartTime:       created.StartTime,
		EndTime:         endTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		ServiceName:     created.ServiceName,
		ServicePrice:    created.ServicePrice,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
