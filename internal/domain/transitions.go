package domain

// statusTransitions граф допустимых переходов статусов бронирования
// pending -> confirmed, cancelled_by_user, cancelled_by_store
// confirmed -> completed, cancelled_by_user, cancelled_by_store, no_show
// Остальные статусы терминальные
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByUser,
		StatusCancelledByStore,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelledByUser,
		StatusCancelledByStore,
		StatusNoShow,
	},
	StatusCompleted:        {},
	StatusCancelledByUser:  {},
	StatusCancelledByStore: {},
	StatusNoShow:           {},
}

// CanTransition проверяет допустимость перехода статуса по графу
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true, если из статуса нет переходов
func IsTerminal(status BookingStatus) bool {
	return len(statusTransitions[status]) == 0
}
