package get_available_slots

import (
	"time"

	"github.com/carhub/booking-service/internal/domain"
	getAvailableSlots "github.com/carhub/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	StoreID         int64           `json:"storeId"`
	ServiceID       int64           `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StoreID:         resp.StoreID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(storeID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StoreID:   storeID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
