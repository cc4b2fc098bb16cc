package get_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.Anchor.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ResourceID != nil && *req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID must not be empty", ErrInvalidInput)
	}

	return nil
}
