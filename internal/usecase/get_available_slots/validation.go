package get_available_slots

import "fmt"

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
