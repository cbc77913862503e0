package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
