package create_booking

import (
	"fmt"
	"time"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/types"
)

// validateRequest валидирует форму запроса
// Выполняется до любых обращений к хранилищу: клиентской валидации доверять нельзя
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBookingTime проверяет, что для сегодняшней даты время начала ещё не прошло
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	if startTime.IsBefore(currentTime) {
		return ErrTooLateToBook
	}

	return nil
}

// validateSlotWithinSchedule проверяет, что слот целиком лежит в рабочих часах,
// не пересекается с обеденным перерывом и попадает на сетку слотов
func validateSlotWithinSchedule(day *domain.DaySchedule, startTime types.TimeString, durationMinutes int) error {
	if startTime.IsBefore(day.OpenTime) {
		return fmt.Errorf("%w: starts before opening at %s", ErrInvalidTimeSlot, day.OpenTime)
	}

	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if slotEnd.IsAfter(day.CloseTime) {
		return fmt.Errorf("%w: ends after closing at %s", ErrInvalidTimeSlot, day.CloseTime)
	}

	if day.HasBreak() && intervalsOverlap(startTime, slotEnd, *day.BreakStart, *day.BreakEnd) {
		return fmt.Errorf("%w: overlaps lunch break %s-%s", ErrInvalidTimeSlot, *day.BreakStart, *day.BreakEnd)
	}

	// Время начала должно лежать на сетке слотов от времени открытия:
	// именно эти кандидаты предлагает клиенту расчёт доступных слотов
	openMinutes, err := day.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if (startMinutes-openMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time is not aligned to the %d-minute grid", ErrInvalidTimeSlot, domain.SlotStepMinutes)
	}

	return nil
}

// countOverlappingBookings подсчитывает количество активных бронирований,
// пересекающихся с указанным слотом
func countOverlappingBookings(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (int, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, booking := range bookings {
		// Отменённые и no-show бронирования освобождают слот
		if !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if intervalsOverlap(startTime, slotEnd, booking.StartTime, bookingEnd) {
			count++
		}
	}

	return count, nil
}

// intervalsOverlap полуоткрытый тест пересечения интервалов со строгими неравенствами
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func intervalsOverlap(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return bStart.IsBefore(aEnd) && bEnd.IsAfter(aStart)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
