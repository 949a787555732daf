package get_calendar_grid

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда точка обслуживания не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
