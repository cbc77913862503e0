package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у автосервиса нет расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrStoreNotFound возвращается, когда автосервис не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
