package get_available_slots

import (
	"time"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/types"
)

// generateTimeSlots генерирует список доступных времён начала на день
//
// Кандидаты идут по фиксированной 15-минутной сетке от времени открытия
// (domain.SlotStepMinutes), шаг сетки не зависит от длительности услуги.
// Кандидат отбрасывается, если услуга:
//   - не успевает завершиться до закрытия;
//   - пересекается с обеденным перерывом;
//   - пересекается с любым активным бронированием.
//
// Пересечение интервалов проверяется полуоткрытым тестом max(s1,s2) < min(e1,e2)
// со строгими неравенствами: бронирования "впритык" не конфликтуют
func generateTimeSlots(
	day *domain.DaySchedule,
	serviceDurationMinutes int,
	existingBookings []*domain.Booking,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Закрытый день и прошедшие даты - пустой результат, не ошибка
	if day == nil || isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)

	if err := day.OpenTime.Validate(); err != nil {
		return nil, err
	}

	// Цикл ограничен временем закрытия: для close_time = "24:00" кандидаты
	// и шаг сетки упираются в границу суток, AddMinutes при этом ошибается
	currentSlot := day.OpenTime
	for currentSlot.IsBefore(day.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(serviceDurationMinutes)
		if err != nil {
			// Услуга не успевает завершиться до конца суток
			break
		}

		// Услуга не успевает завершиться до закрытия - дальше слотов не будет
		if slotEnd.IsAfter(day.CloseTime) {
			break
		}

		if fitsSchedule(day, currentSlot, slotEnd) && !overlapsAnyBooking(currentSlot, slotEnd, existingBookings) {
			slots = append(slots, currentSlot)
		}

		next, err := currentSlot.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		currentSlot = next
	}

	// Для сегодняшней даты отбрасываем уже прошедшие времена начала
	if isSameDay(requestDate, now) {
		currentTime := types.NewTimeString(now)

		filtered := make([]types.TimeString, 0, len(slots))
		for _, slot := range slots {
			if !slot.IsBefore(currentTime) {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	return slots, nil
}

// fitsSchedule проверяет, что интервал слота не пересекается с обеденным перерывом
func fitsSchedule(day *domain.DaySchedule, slotStart, slotEnd types.TimeString) bool {
	if !day.HasBreak() {
		return true
	}
	return !intervalsOverlap(slotStart, slotEnd, *day.BreakStart, *day.BreakEnd)
}

// overlapsAnyBooking проверяет пересечение слота хотя бы с одним активным бронированием
func overlapsAnyBooking(slotStart, slotEnd types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Отменённые и no-show бронирования освобождают слот
		if !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			// Некорректное время бронирования не должно блокировать весь день
			continue
		}

		if intervalsOverlap(slotStart, slotEnd, booking.StartTime, bookingEnd) {
			return true
		}
	}
	return false
}

// intervalsOverlap полуоткрытый тест пересечения интервалов [aStart, aEnd) и [bStart, bEnd)
// Строгие неравенства: интервалы, граничащие точка-в-точку, не пересекаются
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
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
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
