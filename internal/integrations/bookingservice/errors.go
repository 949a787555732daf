package bookingservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPlaceNotFound возвращается, когда точка обслуживания не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrStatusConflict возвращается, когда внешний API отклонил смену статуса
	ErrStatusConflict = errors.New("status update conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
