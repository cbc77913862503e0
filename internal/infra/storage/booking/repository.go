package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/dbmetrics"
	"github.com/carhub/booking-service/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"store_id",
	"service_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"service_name",
	"service_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её —
// это обязательное условие при создании с проверкой доступности слота,
// иначе возможна гонка между двумя конкурентными запросами
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"store_id",
			"service_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"service_name",
			"service_price",
			"notes",
		).
		Values(
			booking.UserID,
			booking.StoreID,
			booking.ServiceID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.ServiceName,
			booking.ServicePrice,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByStoreWithFilter получает бронирования автосервиса с гибкой фильтрацией
// Если фильтр не указывает конкретный статус и IncludeInactive=false,
// отменённые и no-show бронирования исключаются — они освобождают свой слот
//
// В транзакции при запросе на конкретную дату добавляется FOR UPDATE:
// этот путь используется проверкой конфликтов при создании бронирования
func (r *Repository) GetByStoreWithFilter(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"store_id": filter.StoreID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	// Для конкретной даты сортируем по времени начала, для периода - сначала новые
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Блокировка строк дня внутри транзакции создания бронирования
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Физическое удаление не используется - история сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow сканирует одну строку в бронирование
func (r *Repository) scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.StoreID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
