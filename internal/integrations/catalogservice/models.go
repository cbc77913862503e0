package catalogservice

// Store модель автосервиса из каталога маркетплейса
type Store struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Address  string  `json:"address"`
	OwnerIDs []int64 `json:"owner_ids"` // Пользователи с правами владельца
	IsActive bool    `json:"is_active"`
}

// Service модель услуги автосервиса из каталога
type Service struct {
	ID              int64    `json:"id"`
	StoreID         int64    `json:"store_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"` // nil = цена по запросу
}

// PriceOrZero возвращает цену услуги или 0, если цена по запросу
func (s *Service) PriceOrZero() float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IsOwner проверяет, что пользователь является владельцем автосервиса
func (s *Store) IsOwner(userID int64) bool {
	for _, id := range s.OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
