package catalogservice

import "errors"

var (
	// ErrStoreNotFound возвращается, когда автосервис не найден в каталоге
	ErrStoreNotFound = errors.New("store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
