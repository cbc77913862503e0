package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid afternoon time", input: "14:30", want: "14:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day boundary", input: "24:00", want: "24:00"},
		{name: "postgres time with seconds", input: "10:15:00", want: "10:15:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "past day boundary", input: "24:01", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "13:45", want: 825},
		{input: "24:00", want: 1440},
		{input: "10:15:00", want: 615}, // формат TIME из PostgreSQL
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err, "Minutes(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Minutes(%q)", tt.input)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within day", input: "10:00", minutes: 30, want: "10:30"},
		{name: "crossing hour", input: "10:45", minutes: 30, want: "11:15"},
		{name: "exactly day boundary", input: "23:30", minutes: 30, want: "24:00"},
		{name: "zero minutes", input: "24:00", minutes: 0, want: "24:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// Сдвиг за границу суток - ошибка, а не усечение до "24:00":
	// усечение останавливало бы продвижение по сетке слотов
	t.Run("past day boundary", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("step from day boundary", func(t *testing.T) {
		_, err := TimeString("24:00").AddMinutes(15)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("negative result", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-30)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("invalid source", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(15)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	assert.True(t, TimeString("18:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsAfter("17:30"))

	// Слоты, усечённые до границы суток, отбрасываются сравнением с закрытием
	assert.True(t, TimeString("24:00").IsAfter("22:00"))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("from postgres time bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("10:30:00")))
		assert.Equal(t, "10:30", ts.String()[:5])
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
