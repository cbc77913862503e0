package domain

import (
	"time"

	"github.com/carhub/booking-service/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByStore BookingStatus = "cancelled_by_store"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking бронирование услуги автосервиса
type Booking struct {
	ID              int64
	UserID          int64
	StoreID         int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Денормализованные данные услуги на момент создания
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime возвращает время окончания бронирования
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsActive возвращает true, если бронирование занимает свой слот в календаре
// Отменённые и no-show бронирования освобождают слот
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByStore &&
		b.Status != StatusNoShow
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled возвращает true, если бронирование было отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByStore
}

// IsFinished возвращает true, если бронирование достигло терминального статуса завершения
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// StoreBookingsFilter фильтр для получения бронирований автосервиса
type StoreBookingsFilter struct {
	StoreID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
