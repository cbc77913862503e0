package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub/booking-service/pkg/types"
)

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestDaySchedule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		day     DaySchedule
		wantErr bool
	}{
		{
			name: "valid day without break",
			day:  DaySchedule{Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
		},
		{
			name: "valid day with lunch break",
			day: DaySchedule{
				Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("13:00"), BreakEnd: timePtr("14:00"),
			},
		},
		{
			name: "break touching working hours boundaries",
			day: DaySchedule{
				Weekday: time.Friday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("09:00"), BreakEnd: timePtr("18:00"),
			},
		},
		{
			name:    "open after close",
			day:     DaySchedule{Weekday: time.Monday, OpenTime: "18:00", CloseTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "open equals close",
			day:     DaySchedule{Weekday: time.Monday, OpenTime: "09:00", CloseTime: "09:00"},
			wantErr: true,
		},
		{
			name: "break start without break end",
			day: DaySchedule{
				Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("13:00"),
			},
			wantErr: true,
		},
		{
			name: "break end before break start",
			day: DaySchedule{
				Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("14:00"), BreakEnd: timePtr("13:00"),
			},
			wantErr: true,
		},
		{
			name: "break starts before opening",
			day: DaySchedule{
				Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("08:00"), BreakEnd: timePtr("10:00"),
			},
			wantErr: true,
		},
		{
			name: "break ends after closing",
			day: DaySchedule{
				Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00",
				BreakStart: timePtr("17:00"), BreakEnd: timePtr("19:00"),
			},
			wantErr: true,
		},
		{
			name:    "invalid open time format",
			day:     DaySchedule{Weekday: time.Monday, OpenTime: "9am", CloseTime: "18:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.day.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeekSchedule_Validate(t *testing.T) {
	t.Run("valid week", func(t *testing.T) {
		week := WeekSchedule{
			{Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: time.Tuesday, OpenTime: "10:00", CloseTime: "19:00"},
		}
		require.NoError(t, week.Validate())
	})

	t.Run("duplicate weekday", func(t *testing.T) {
		week := WeekSchedule{
			{Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: time.Monday, OpenTime: "10:00", CloseTime: "19:00"},
		}
		assert.ErrorIs(t, week.Validate(), ErrInvalidSchedule)
	})

	t.Run("invalid day inside week", func(t *testing.T) {
		week := WeekSchedule{
			{Weekday: time.Monday, OpenTime: "18:00", CloseTime: "09:00"},
		}
		assert.ErrorIs(t, week.Validate(), ErrInvalidSchedule)
	})
}

func TestWeekSchedule_ByWeekday(t *testing.T) {
	week := WeekSchedule{
		{Weekday: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
		{Weekday: time.Saturday, OpenTime: "10:00", CloseTime: "15:00"},
	}

	day := week.ByWeekday(time.Saturday)
	require.NotNil(t, day)
	assert.Equal(t, types.TimeString("10:00"), day.OpenTime)

	// Отсутствие записи означает выходной
	assert.Nil(t, week.ByWeekday(time.Sunday))
}
