package get_calendar_grid

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.Variant != VariantDay && req.Variant != VariantWeek {
		return fmt.Errorf("%w: unknown grid variant %q", ErrInvalidInput, req.Variant)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.EmployeeIDs {
		if id <= 0 {
			return fmt.Errorf("%w: employee ids must be positive", ErrInvalidInput)
		}
	}

	return nil
}
