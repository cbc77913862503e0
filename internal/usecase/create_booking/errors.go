package create_booking

import "errors"

var (
	// ErrStoreNotFound возвращается, когда автосервис не найден
	ErrStoreNotFound = errors.New("create_booking: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrStoreClosed возвращается, когда автосервис закрыт в указанную дату
	ErrStoreClosed = errors.New("create_booking: store is closed on this date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят другим бронированием
	// Это ожидаемый исход гонки двух клиентов, а не сбой системы
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время слота некорректно
	// (вне рабочих часов, пересекается с перерывом или не лежит на сетке слотов)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается при попытке забронировать уже прошедшее время
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
