package domain

// Slot generation policy
const (
	// SlotStepMinutes фиксированный шаг сетки слотов
	// Не зависит от длительности услуги: услуги разной длительности
	// в один день начинаются на одной и той же 15-минутной сетке
	SlotStepMinutes = 15
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих место в календаре
// Используется для фильтрации при подсчёте доступных слотов и проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByStore,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelledByUser,
	StatusCancelledByStore,
	StatusNoShow,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s BookingStatus) bool {
	for _, status := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
