package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (минутная точность)
// Используется для хранения времени начала слотов и рабочих часов
type TimeString string

const (
	// timeStringFormat формат времени HH:MM
	timeStringFormat = "15:04"

	// minutesPerDay количество минут в сутках
	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes создает TimeString из количества минут с начала суток
// Значение 1440 соответствует границе суток и форматируется как "24:00"
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeFormat, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate проверяет, что строка имеет формат HH:MM
func (t TimeString) Validate() error {
	if _, ok := t.toMinutes(); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	m, ok := t.toMinutes()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return m, nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются несравнимыми (false)
func (t TimeString) IsBefore(other TimeString) bool {
	a, okA := t.toMinutes()
	b, okB := other.toMinutes()
	return okA && okB && a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, okA := t.toMinutes()
	b, okB := other.toMinutes()
	return okA && okB && a > b
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд
// Результат за границей суток - ошибка: "HH:MM" не переносится на следующий день,
// граничное значение "24:00" допустимо
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, ok := t.toMinutes()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return FromMinutes(m + minutes)
}

// toMinutes парсит строку в минуты с начала суток
// Принимает "HH:MM", "HH:MM:SS" (формат TIME из PostgreSQL) и граничное значение "24:00"
func (t TimeString) toMinutes() (int, bool) {
	s := string(t)
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		s = s[:5] // отбрасываем секунды
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}

	hh, okH := parseTwoDigits(s[0:2])
	mm, okM := parseTwoDigits(s[3:5])
	if !okH || !okM || mm > 59 {
		return 0, false
	}
	if hh > 24 || (hh == 24 && mm != 0) {
		return 0, false
	}

	return hh*60 + mm, true
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// Scan реализует sql.Scanner для чтения колонок TIME
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, value)
	}

	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
