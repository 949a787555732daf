package get_month_markers

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// aggregateMarkers сводит список бронирований в набор точек на каждую дату.
// Чистая функция; порядок точек на дате повторяет порядок входного списка.
//
// Режимы выбора цвета:
//   - статусный (по умолчанию): цвет по статусу бронирования, нераспознанный
//     статус получает нейтральную заглушку (допустимо только для отображения)
//   - сравнение сотрудников (compareEmployees): цвет сотрудника из справочника,
//     с откатом к статусному цвету, если сотрудник не назначен или без цвета
func aggregateMarkers(bookings []*domain.Booking, directory domain.EmployeeDirectory, compareEmployees bool) map[string][]Marker {
	markers := make(map[string][]Marker)

	for _, b := range bookings {
		dateKey := b.DateOnly().Format(domain.DateFormat)
		markers[dateKey] = append(markers[dateKey], Marker{
			BookingID: b.ID,
			Color:     markerColor(b, directory, compareEmployees),
		})
	}

	return markers
}

// markerColor выбирает цвет точки для одного бронирования
func markerColor(b *domain.Booking, directory domain.EmployeeDirectory, compareEmployees bool) string {
	if compareEmployees && b.EmployeeID != nil {
		if employee, ok := directory[*b.EmployeeID]; ok && employee.Color != "" {
			return employee.Color
		}
	}

	if color, ok := domain.StatusMarkerColors[b.Status]; ok {
		return color
	}
	return domain.MarkerColorPlaceholder
}

// filterByEmployees оставляет бронирования выбранных сотрудников, сохраняя
// порядок входного списка. Пустой набор ничего не ограничивает.
func filterByEmployees(bookings []*domain.Booking, employeeIDs []int64) []*domain.Booking {
	if len(employeeIDs) == 0 {
		return bookings
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.EmployeeID == nil {
			continue
		}
		for _, id := range employeeIDs {
			if id == *b.EmployeeID {
				result = append(result, b)
				break
			}
		}
	}
	return result
}
