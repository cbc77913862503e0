package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStoreNotFound возвращается, когда автосервис не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается при недопустимом переходе между статусами
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
