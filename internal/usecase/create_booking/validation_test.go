package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub/booking-service/internal/domain"
	"github.com/carhub/booking-service/pkg/ptr"
	"github.com/carhub/booking-service/pkg/types"
)

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		StoreID:   2,
		ServiceID: 3,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, validateRequest(validRequest()))
	})

	t.Run("non-positive ids", func(t *testing.T) {
		for _, mutate := range []func(*Request){
			func(r *Request) { r.UserID = 0 },
			func(r *Request) { r.StoreID = -1 },
			func(r *Request) { r.ServiceID = 0 },
		} {
			req := validRequest()
			mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "10am"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := validRequest()
		req.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("notes at limit", func(t *testing.T) {
		req := validRequest()
		req.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength))
		assert.NoError(t, validateRequest(req))
	})
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 9, 7, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, validateDate(now, now))                    // сегодня
	assert.NoError(t, validateDate(now.AddDate(0, 0, 1), now))   // завтра
	assert.ErrorIs(t, validateDate(now.AddDate(0, 0, -1), now), ErrInvalidDate)
}

func TestValidateBookingTime(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	// На будущую дату любое время допустимо
	assert.NoError(t, validateBookingTime(tomorrow, "09:00", now))

	// Сегодня: прошедшее время отклоняется, будущее допустимо
	assert.ErrorIs(t, validateBookingTime(today, "11:45", now), ErrTooLateToBook)
	assert.NoError(t, validateBookingTime(today, "12:00", now))
	assert.NoError(t, validateBookingTime(today, "12:15", now))
}

func TestValidateSlotWithinSchedule(t *testing.T) {
	day := &domain.DaySchedule{
		Weekday:    time.Monday,
		OpenTime:   "09:00",
		CloseTime:  "17:00",
		BreakStart: timePtr("13:00"),
		BreakEnd:   timePtr("14:00"),
	}

	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
		wantErr   bool
	}{
		{name: "valid morning slot", startTime: "10:00", duration: 30},
		{name: "slot ending exactly at closing", startTime: "16:30", duration: 30},
		{name: "slot ending exactly at break start", startTime: "12:30", duration: 30},
		{name: "slot starting exactly at break end", startTime: "14:00", duration: 30},
		{name: "before opening", startTime: "08:45", duration: 30, wantErr: true},
		{name: "ends after closing", startTime: "16:45", duration: 30, wantErr: true},
		{name: "overlaps lunch break", startTime: "12:45", duration: 30, wantErr: true},
		{name: "inside lunch break", startTime: "13:15", duration: 30, wantErr: true},
		{name: "off the slot grid", startTime: "10:05", duration: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotWithinSchedule(day, tt.startTime, tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("midnight close", func(t *testing.T) {
		// Закрытие в "24:00": слот, заканчивающийся ровно на границе суток,
		// допустим, выходящий за неё - нет
		midnight := &domain.DaySchedule{Weekday: time.Friday, OpenTime: "20:00", CloseTime: "24:00"}

		assert.NoError(t, validateSlotWithinSchedule(midnight, "23:30", 30))
		assert.ErrorIs(t, validateSlotWithinSchedule(midnight, "23:45", 30), ErrInvalidTimeSlot)
	})

	t.Run("grid is anchored at opening time", func(t *testing.T) {
		// Открытие в 09:10: сетка 09:10, 09:25, 09:40, ...
		shifted := &domain.DaySchedule{Weekday: time.Monday, OpenTime: "09:10", CloseTime: "18:00"}

		assert.NoError(t, validateSlotWithinSchedule(shifted, "09:25", 30))
		assert.ErrorIs(t, validateSlotWithinSchedule(shifted, "09:30", 30), ErrInvalidTimeSlot)
	})
}

func TestCountOverlappingBookings(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		{StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusPending},
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledByUser}, // освобождён
	}

	t.Run("no overlap before", func(t *testing.T) {
		count, err := countOverlappingBookings("09:00", 60, bookings)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("overlaps one booking", func(t *testing.T) {
		count, err := countOverlappingBookings("10:30", 30, bookings)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("overlaps two bookings", func(t *testing.T) {
		count, err := countOverlappingBookings("10:30", 60, bookings)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("back-to-back is not a conflict", func(t *testing.T) {
		count, err := countOverlappingBookings("11:30", 30, bookings)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		cancelled := []*domain.Booking{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledByStore},
		}
		count, err := countOverlappingBookings("10:00", 60, cancelled)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
