package models

import (
	"errors"
	"time"

	"github.com/carhub/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetStoreBookingsRequest запрос на получение бронирований автосервиса
type GetStoreBookingsRequest struct {
	UserID          int64      `json:"userId"`
	StoreID         int64      `json:"storeId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStoreBookingsRequest) ToDomainFilter() (domain.StoreBookingsFilter, error) {
	filter := domain.StoreBookingsFilter{
		StoreID:         r.StoreID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	StoreID         int64  `json:"storeId"`
	ServiceID       int64  `json:"serviceId"`
	BookingDate     string `json:"bookingDate"` // "2026-03-15"
	StartTime       string `json:"startTime"`   // "10:00"
	EndTime         string `json:"endTime"`     // "10:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PendingCountResponse ответ со счётчиком pending-бронирований
type PendingCountResponse struct {
	StoreID int64 `json:"storeId"`
	Count   int64 `json:"count"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		StoreID:            b.StoreID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if endTime, err := b.EndTime(); err == nil {
		resp.EndTime = endTime.String()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}
