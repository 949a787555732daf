package get_month_markers

import "time"

// Request модель запроса на агрегацию маркеров месячного календаря
type Request struct {
	PlaceID      int64
	Month        time.Time  // любая дата целевого месяца
	SelectedDate *time.Time // выбранная дата, опционально
	EmployeeIDs  []int64    // выбранные сотрудники; 2+ включает режим сравнения
}

// Marker цветная точка одного бронирования на дате месячного календаря
type Marker struct {
	BookingID int64
	Color     string // hex-цвет точки
}

// Response модель ответа: маркеры по датам месяца
type Response struct {
	PlaceID int64
	Month   time.Time // первый день месяца

	// Markers: дата (YYYY-MM-DD) → упорядоченный список точек.
	// Порядок точек повторяет порядок бронирований во входном списке -
	// месячный календарь показывает наличие и количество, не последовательность
	Markers map[string][]Marker

	// SelectedDate выбранная дата (YYYY-MM-DD), независима от списка точек
	SelectedDate string

	// EmployeeComparison true, когда цвета взяты из справочника сотрудников
	EmployeeComparison bool
}
