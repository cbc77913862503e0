package create_booking

import (
	"time"

	"github.com/carhub/booking-service/internal/domain"
	createBooking "github.com/carhub/booking-service/internal/usecase/create_booking"
	"github.com/carhub/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
// Идентификатор клиента не принимается из тела: его определяет
// аутентифицированный контекст запроса
type CreateBookingRequest struct {
	StoreID     int64   `json:"storeId"`
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2026-03-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	StoreID         int64   `json:"storeId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID берётся из аутентифицированного контекста, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		StoreID:   r.StoreID,
		ServiceID: r.ServiceID,
		Date:      bookingDate,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		StoreID:         resp.StoreID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
