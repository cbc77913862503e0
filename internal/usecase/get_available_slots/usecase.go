package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhub/booking-service/internal/domain"
	scheduleRepo "github.com/carhub/booking-service/internal/infra/storage/schedule"
	catalogClient "github.com/carhub/booking-service/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: store=%d, service=%d, date=%s",
		req.StoreID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем существование автосервиса
	if _, err := uc.catalogClient.GetStore(ctx, req.StoreID); err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailableSlots: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (длительность определяет конец каждого слота)
	service, err := uc.catalogClient.GetService(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%d has non-positive duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 4. Получаем расписание на день недели
	// Отсутствие записи означает, что сервис в этот день закрыт - пустой список слотов
	day, err := uc.scheduleRepo.GetByStoreAndWeekday(ctx, req.StoreID, req.Date.Weekday())
	if err != nil && !errors.Is(err, scheduleRepo.ErrDayNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if day == nil {
		uc.logger.Info("GetAvailableSlots: store id=%d is closed on %s",
			req.StoreID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 5. Получаем активные бронирования на эту дату
	filter := domain.StoreBookingsFilter{
		StoreID:         req.StoreID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Отменённые и no-show освобождают слот
	}

	bookings, err := uc.bookingRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	timeSlots, err := generateTimeSlots(day, service.DurationMinutes, bookings, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(timeSlots))
	for _, start := range timeSlots {
		end, err := start.AddMinutes(service.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}
		slots = append(slots, Slot{StartTime: start, EndTime: end})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for store=%d, service=%d, date=%s",
		len(slots), req.StoreID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		StoreID:         req.StoreID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		StoreID:         req.StoreID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		Slots:           []Slot{},
	}
}
