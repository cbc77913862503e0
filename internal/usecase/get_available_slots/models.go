package get_available_slots

import (
	"time"

	"github.com/carhub/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StoreID   int64     // ID автосервиса
	ServiceID int64     // ID услуги (определяет длительность)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Список носит рекомендательный характер: к моменту отправки заявки
// он может устареть, финальная проверка выполняется при создании бронирования
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	StoreID         int64     // ID автосервиса
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность услуги
	Slots           []Slot    // Список доступных слотов (по возрастанию времени)
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота
}
