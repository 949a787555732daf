package get_calendar_grid

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Variant вариант календарной сетки
type Variant string

const (
	VariantDay  Variant = "day"
	VariantWeek Variant = "week"
)

// Request модель запроса на расчет позиций календарной сетки
type Request struct {
	PlaceID     int64
	Variant     Variant
	Date        time.Time // день (day) или любая дата целевой недели (week)
	EmployeeIDs []int64   // выбранные сотрудники (пустой набор = без ограничения)
}

// Response модель ответа с позициями бронирований в сетке
type Response struct {
	PlaceID       int64
	Variant       Variant
	Date          time.Time // запрошенная дата, нормализованная к полуночи
	WeekStart     time.Time // начало недели сетки (только для week)
	GridStartHour int
	GridEndHour   int
	HourHeightPx  float64
	MinHeightPx   float64
	Positions     []PlacedBooking
}

// PlacedBooking бронирование с вычисленной позицией в сетке.
// TopPx может быть отрицательным или выходить за высоту сетки, если время
// бронирования вне диапазона часов - сетка не обрезает, это задача рендера.
type PlacedBooking struct {
	Booking   *domain.Booking
	TopPx     float64
	HeightPx  float64
	DayColumn int // смещение дня от начала недели 0-6, только для week
}
