package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhub/booking-service/internal/domain"
	bookingRepo "github.com/carhub/booking-service/internal/infra/storage/booking"
	catalogClient "github.com/carhub/booking-service/internal/integrations/catalogservice"
	"github.com/carhub/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalog     CatalogClient
	counter     PendingCounter
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog CatalogClient,
	counter PendingCounter,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		counter:     counter,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
// или если он является владельцем автосервиса
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStoreBookings получает бронирования автосервиса с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только владельцам автосервиса
//
// Примеры использования:
// - Все активные бронирования: GetStoreBookings(ctx, &GetStoreBookingsRequest{StoreID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetStoreBookings(ctx context.Context, req *models.GetStoreBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetStoreBookings: fetching bookings for store=%d, user=%d", req.StoreID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права владельца
	if err := s.checkOwnerAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStoreBookings: invalid filter for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStoreBookings: repository error for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: GetStoreBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStoreBookings: successfully fetched %d bookings for store=%d", len(bookings), req.StoreID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPendingCount возвращает количество необработанных бронирований автосервиса
// Доступно только владельцам автосервиса
func (s *Service) GetPendingCount(ctx context.Context, storeID int64, userID int64) (*models.PendingCountResponse, error) {
	s.logger.Info("GetPendingCount: fetching pending count for store=%d, user=%d", storeID, userID)

	if err := s.checkOwnerAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	count, err := s.counter.Get(ctx, storeID)
	if err != nil {
		s.logger.Error("GetPendingCount: counter error for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: GetPendingCount - counter error: %v", ErrInternal, err)
	}

	return &models.PendingCountResponse{StoreID: storeID, Count: count}, nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// Владелец может отменить любое бронирование автосервиса (cancelled_by_store)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Проверяем, является ли пользователь владельцем автосервиса
		if err := s.checkOwnerAccess(ctx, booking.StoreID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByStore
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Бронирование покинуло статус pending - уменьшаем счётчик владельца
	if booking.Status == domain.StatusPending {
		if err := s.counter.Decr(ctx, booking.StoreID); err != nil {
			s.logger.Warn("Cancel: failed to decrement pending counter for store=%d: %v", booking.StoreID, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только владельцам автосервиса
// Переход проверяется по графу допустимых переходов между статусами
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только владелец автосервиса)
	if err := s.checkOwnerAccess(ctx, booking.StoreID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Бронирование покинуло статус pending - уменьшаем счётчик владельца
	if booking.Status == domain.StatusPending && newStatus != domain.StatusPending {
		if err := s.counter.Decr(ctx, booking.StoreID); err != nil {
			s.logger.Warn("UpdateStatus: failed to decrement pending counter for store=%d: %v", booking.StoreID, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он владелец автосервиса
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.StoreID, userID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем автосервиса
func (s *Service) checkOwnerAccess(ctx context.Context, storeID int64, userID int64) error {
	store, err := s.catalog.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			s.logger.Warn("checkOwnerAccess: store id=%d not found", storeID)
			return ErrStoreNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get store id=%d: %v", storeID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get store: %v", ErrInternal, err)
	}

	if store.IsOwner(userID) {
		return nil
	}

	s.logger.Warn("checkOwnerAccess: user=%d is not an owner of store=%d", userID, storeID)
	return ErrAccessDenied
}
