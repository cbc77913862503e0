package get_store_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date задаёт бронирования на один день, from/to задают период
func ToServiceRequest(
	storeID int64,
	userID int64,
	statusStr string,
	dateStr string,
	fromStr string,
	toStr string,
	includeInactiveStr string,
) (*models.GetStoreBookingsRequest, error) {
	req := &models.GetStoreBookingsRequest{
		UserID:          userID,
		StoreID:         storeID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("period end is before period start")
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
