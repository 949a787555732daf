package staffservice

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда точка обслуживания не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что StaffService недоступен и следует использовать статусные цвета
	ErrServiceDegraded = errors.New("staffservice unavailable: graceful degradation applied")
)
