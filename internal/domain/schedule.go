package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/carhub/booking-service/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при нарушении инвариантов дневного расписания
	ErrInvalidSchedule = errors.New("invalid day schedule")
)

// DaySchedule расписание работы автосервиса на один день недели
// Отсутствие записи на день недели означает, что сервис в этот день закрыт
type DaySchedule struct {
	StoreID   int64
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// Обеденный перерыв (опционально, либо оба поля, либо ни одного)
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if the day has a lunch break configured
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// Validate проверяет инварианты дневного расписания:
// openTime < closeTime; если задан перерыв, то openTime <= breakStart < breakEnd <= closeTime
func (d *DaySchedule) Validate() error {
	if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d is out of range", ErrInvalidSchedule, d.Weekday)
	}

	if err := d.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}
	if err := d.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}
	if !d.OpenTime.IsBefore(d.CloseTime) {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidSchedule, d.OpenTime, d.CloseTime)
	}

	// Перерыв либо задан полностью, либо не задан вовсе
	if (d.BreakStart == nil) != (d.BreakEnd == nil) {
		return fmt.Errorf("%w: break start and break end must be set together", ErrInvalidSchedule)
	}

	if d.HasBreak() {
		if err := d.BreakStart.Validate(); err != nil {
			return fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
		}
		if err := d.BreakEnd.Validate(); err != nil {
			return fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
		}
		if !d.BreakStart.IsBefore(*d.BreakEnd) {
			return fmt.Errorf("%w: break start %s must be before break end %s", ErrInvalidSchedule, *d.BreakStart, *d.BreakEnd)
		}
		if d.BreakStart.IsBefore(d.OpenTime) {
			return fmt.Errorf("%w: break start %s is before open time %s", ErrInvalidSchedule, *d.BreakStart, d.OpenTime)
		}
		if d.BreakEnd.IsAfter(d.CloseTime) {
			return fmt.Errorf("%w: break end %s is after close time %s", ErrInvalidSchedule, *d.BreakEnd, d.CloseTime)
		}
	}

	return nil
}

// WeekSchedule недельное расписание автосервиса: не более одной записи на день недели
type WeekSchedule []DaySchedule

// ByWeekday возвращает расписание на указанный день недели или nil, если сервис закрыт
func (w WeekSchedule) ByWeekday(weekday time.Weekday) *DaySchedule {
	for i := range w {
		if w[i].Weekday == weekday {
			return &w[i]
		}
	}
	return nil
}

// Validate проверяет каждую запись и уникальность дней недели
func (w WeekSchedule) Validate() error {
	seen := make(map[time.Weekday]bool, len(w))

	for i := range w {
		if seen[w[i].Weekday] {
			return fmt.Errorf("%w: duplicate entry for weekday %s", ErrInvalidSchedule, w[i].Weekday)
		}
		seen[w[i].Weekday] = true

		if err := w[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
