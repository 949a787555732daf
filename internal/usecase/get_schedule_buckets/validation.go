package get_schedule_buckets

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.Category != "" {
		if err := domain.ValidateCategory(req.Category); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	for _, id := range req.EmployeeIDs {
		if id <= 0 {
			return fmt.Errorf("%w: employee ids must be positive", ErrInvalidInput)
		}
	}

	return nil
}
