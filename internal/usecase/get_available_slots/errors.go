package get_available_slots

import "errors"

var (
	// ErrStoreNotFound возвращается, когда автосервис не найден
	ErrStoreNotFound = errors.New("get_available_slots: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
