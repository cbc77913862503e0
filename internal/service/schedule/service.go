package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhub/booking-service/internal/domain"
	scheduleRepo "github.com/carhub/booking-service/internal/infra/storage/schedule"
	catalogClient "github.com/carhub/booking-service/internal/integrations/catalogservice"
	"github.com/carhub/booking-service/internal/service/schedule/models"
)

// Service сервис для работы с недельным расписанием автосервиса
type Service struct {
	scheduleRepo ScheduleRepository
	catalog      CatalogClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает недельное расписание автосервиса
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, storeID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for store=%d", storeID)

	// Чтение недельного расписания в read-only транзакции
	var week domain.WeekSchedule
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var repoErr error
		week, repoErr = s.scheduleRepo.GetByStore(ctx, storeID)
		return repoErr
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Get: schedule for store=%d not found", storeID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Get: repository error for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule for store=%d (%d days)", storeID, len(week))
	return models.FromDomainWeek(storeID, week), nil
}

// Replace полностью заменяет недельное расписание автосервиса
// Дни, отсутствующие в запросе, становятся выходными
// Доступно только владельцам автосервиса
func (s *Service) Replace(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule for store=%d by user=%d (%d days)",
		storeID, req.UserID, len(req.Days))

	// Проверяем существование автосервиса и права владельца
	store, err := s.catalog.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			s.logger.Warn("Replace: store id=%d not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("Replace: failed to get store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	if !store.IsOwner(req.UserID) {
		s.logger.Warn("Replace: user=%d is not an owner of store=%d", req.UserID, storeID)
		return nil, ErrAccessDenied
	}

	week, err := req.ToDomainWeek(storeID)
	if err != nil {
		s.logger.Warn("Replace: invalid schedule for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := week.Validate(); err != nil {
		s.logger.Warn("Replace: schedule validation failed for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Удаление старых строк и вставка новых выполняются атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceForStore(txCtx, storeID, week)
	})
	if err != nil {
		s.logger.Error("Replace: repository error for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced schedule for store=%d", storeID)
	return models.FromDomainWeek(storeID, week), nil
}
