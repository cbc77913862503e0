package create_booking

import (
	"time"

	"github.com/carhub/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID клиента
	StoreID   int64            // ID автосервиса
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID клиента
	StoreID         int64            // ID автосервиса
	ServiceID       int64            // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования (pending)

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
