package models

import (
	"errors"
	"strings"
	"time"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Request модели

// DayScheduleRequest расписание одного дня недели
type DayScheduleRequest struct {
	Weekday    string  `json:"weekday"`              // "monday" ... "sunday"
	OpenTime   string  `json:"openTime"`             // "09:00"
	CloseTime  string  `json:"closeTime"`            // "18:00"
	BreakStart *string `json:"breakStart,omitempty"` // "13:00" (опционально)
	BreakEnd   *string `json:"breakEnd,omitempty"`   // "14:00" (опционально)
}

// UpdateScheduleRequest запрос на полную замену недельного расписания
// Дни, отсутствующие в списке, считаются выходными
type UpdateScheduleRequest struct {
	UserID int64                `json:"userId"`
	Days   []DayScheduleRequest `json:"days"`
}

// ToDomainWeek конвертирует запрос в domain модель недельного расписания
func (r *UpdateScheduleRequest) ToDomainWeek(storeID int64) (domain.WeekSchedule, error) {
	week := make(domain.WeekSchedule, 0, len(r.Days))

	for _, day := range r.Days {
		weekday, ok := weekdayNames[strings.ToLower(day.Weekday)]
		if !ok {
			return nil, ErrInvalidWeekday
		}

		openTime, err := types.NewTimeStringFromString(day.OpenTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		closeTime, err := types.NewTimeStringFromString(day.CloseTime)
		if err != nil {
			return nil, ErrInvalidTime
		}

		domainDay := domain.DaySchedule{
			StoreID:   storeID,
			Weekday:   weekday,
			OpenTime:  openTime,
			CloseTime: closeTime,
		}

		if day.BreakStart != nil {
			breakStart, err := types.NewTimeStringFromString(*day.BreakStart)
			if err != nil {
				return nil, ErrInvalidTime
			}
			domainDay.BreakStart = &breakStart
		}
		if day.BreakEnd != nil {
			breakEnd, err := types.NewTimeStringFromString(*day.BreakEnd)
			if err != nil {
				return nil, ErrInvalidTime
			}
			domainDay.BreakEnd = &breakEnd
		}

		week = append(week, domainDay)
	}

	return week, nil
}

// Response модели

// DayScheduleResponse расписание одного дня недели
type DayScheduleResponse struct {
	Weekday    string  `json:"weekday"`
	OpenTime   string  `json:"openTime"`
	CloseTime  string  `json:"closeTime"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// ScheduleResponse недельное расписание автосервиса
type ScheduleResponse struct {
	StoreID int64                 `json:"storeId"`
	Days    []DayScheduleResponse `json:"days"`
}

// FromDomainWeek конвертирует domain модель в DTO
func FromDomainWeek(storeID int64, week domain.WeekSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		StoreID: storeID,
		Days:    make([]DayScheduleResponse, 0, len(week)),
	}

	for _, day := range week {
		dayResp := DayScheduleResponse{
			Weekday:   strings.ToLower(day.Weekday.String()),
			OpenTime:  day.OpenTime.String(),
			CloseTime: day.CloseTime.String(),
		}
		if day.BreakStart != nil {
			s := day.BreakStart.String()
			dayResp.BreakStart = &s
		}
		if day.BreakEnd != nil {
			s := day.BreakEnd.String()
			dayResp.BreakEnd = &s
		}
		resp.Days = append(resp.Days, dayResp)
	}

	return resp
}
