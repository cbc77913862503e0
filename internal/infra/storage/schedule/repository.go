package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/dbmetrics"
	"github.com/carhub/booking-service/pkg/psqlbuilder"
	"github.com/carhub/booking-service/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var scheduleColumns = []string{
	"store_id",
	"weekday",
	"open_time",
	"close_time",
	"break_start",
	"break_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельным расписанием автосервисов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStore получает недельное расписание автосервиса
// Отсутствие записей означает, что расписание не настроено
func (r *Repository) GetByStore(ctx context.Context, storeID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("store_schedules").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeekSchedule, 0, 7)

	for rows.Next() {
		day, err := r.scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStore - scan row: %v", ErrScanRow, err)
		}
		week = append(week, *day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStore - rows error: %v", ErrScanRow, err)
	}

	if len(week) == 0 {
		return nil, ErrScheduleNotFound
	}

	return week, nil
}

// GetByStoreAndWeekday получает расписание автосервиса на конкретный день недели
// ErrDayNotFound означает, что сервис в этот день закрыт
func (r *Repository) GetByStoreAndWeekday(ctx context.Context, storeID int64, weekday time.Weekday) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("store_schedules").
		Where(squirrel.Eq{"store_id": storeID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreAndWeekday - scan row: %v", ErrScanRow, err)
	}

	return day, nil
}

// ReplaceForStore полностью заменяет недельное расписание автосервиса
// Должен вызываться внутри транзакции: удаление и вставка идут отдельными запросами
func (r *Repository) ReplaceForStore(ctx context.Context, storeID int64, week domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("store_schedules").
		Where(squirrel.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForStore - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStore - execute delete: %v", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("store_schedules").
		Columns("store_id", "weekday", "open_time", "close_time", "break_start", "break_end")

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			storeID,
			int(day.Weekday),
			day.OpenTime,
			day.CloseTime,
			day.BreakStart,
			day.BreakEnd,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForStore - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStore - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDay(row rowScanner) (*domain.DaySchedule, error) {
	var day domain.DaySchedule
	var weekday int
	var breakStart, breakEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&day.StoreID,
		&weekday,
		&day.OpenTime,
		&day.CloseTime,
		&breakStart,
		&breakEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.Weekday = time.Weekday(weekday)
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	if breakStart.Valid {
		ts, err := types.NewTimeStringFromString(breakStart.String)
		if err != nil {
			return nil, err
		}
		day.BreakStart = &ts
	}
	if breakEnd.Valid {
		ts, err := types.NewTimeStringFromString(breakEnd.String)
		if err != nil {
			return nil, err
		}
		day.BreakEnd = &ts
	}

	return &day, nil
}
