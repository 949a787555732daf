package get_month_markers

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	for _, id := range req.EmployeeIDs {
		if id <= 0 {
			return fmt.Errorf("%w: employee ids must be positive", ErrInvalidInput)
		}
	}

	return nil
}
