package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPlaceNotFound возвращается, когда точка обслуживания не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrSameStatus возвращается при переходе в текущий статус (no-op запрещен)
	ErrSameStatus = errors.New("booking already has this status")

	// ErrNotPending возвращается, когда accept/decline применяется не к pending бронированию
	ErrNotPending = errors.New("booking is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
