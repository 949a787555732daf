package domain

import "errors"

var (
	// ErrUnknownStatus возвращается, когда статус не входит в закрытый набор значений
	ErrUnknownStatus = errors.New("unknown booking status")

	// ErrSameStatus возвращается при попытке перевести бронирование в его текущий статус
	ErrSameStatus = errors.New("target status equals current status")

	// ErrTransitionNotAllowed возвращается, когда переход отсутствует в таблице переходов
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrNotPending возвращается, когда accept/decline применяется не к pending бронированию
	ErrNotPending = errors.New("booking is not pending")

	// ErrUnknownCategory возвращается при неизвестной категории фильтра
	ErrUnknownCategory = errors.New("unknown filter category")
)
