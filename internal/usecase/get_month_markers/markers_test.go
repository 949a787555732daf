package get_month_markers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func mkBooking(id int64, date string, startTime string, status domain.BookingStatus, employeeID *int64) *domain.Booking {
	day, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ID:          id,
		PlaceID:     1,
		EmployeeID:  employeeID,
		BookingDate: day,
		StartTime:   types.TimeString(startTime),
		Status:      status,
	}
}

var directory = domain.EmployeeDirectory{
	10: {ID: 10, Name: "Anna", Color: "#3F51B5"},
	20: {ID: 20, Name: "Boris", Color: "#009688"},
	30: {ID: 30, Name: "Vera"}, // без цвета
}

func TestAggregateMarkers_StatusColors(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusPending, nil),
		mkBooking(2, "2024-06-12", "10:00", domain.StatusConfirmed, nil),
		mkBooking(3, "2024-06-13", "11:00", domain.StatusCancelled, nil),
		mkBooking(4, "2024-06-13", "12:00", domain.StatusCompleted, nil),
	}

	markers := aggregateMarkers(bookings, nil, false)

	require.Len(t, markers, 2)
	require.Len(t, markers["2024-06-12"], 2)
	assert.Equal(t, domain.MarkerColorPending, markers["2024-06-12"][0].Color)
	assert.Equal(t, domain.MarkerColorConfirmed, markers["2024-06-12"][1].Color)
	require.Len(t, markers["2024-06-13"], 2)
	assert.Equal(t, domain.MarkerColorCancelled, markers["2024-06-13"][0].Color)
	assert.Equal(t, domain.MarkerColorCompleted, markers["2024-06-13"][1].Color)
}

func TestAggregateMarkers_UnknownStatusGetsPlaceholder(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.BookingStatus("archived"), nil),
	}

	markers := aggregateMarkers(bookings, nil, false)

	require.Len(t, markers["2024-06-12"], 1)
	assert.Equal(t, domain.MarkerColorPlaceholder, markers["2024-06-12"][0].Color)
}

func TestAggregateMarkers_PreservesInputOrder(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "15:00", domain.StatusConfirmed, nil),
		mkBooking(2, "2024-06-12", "09:00", domain.StatusPending, nil),
		mkBooking(3, "2024-06-12", "11:00", domain.StatusCompleted, nil),
	}

	markers := aggregateMarkers(bookings, nil, false)

	require.Len(t, markers["2024-06-12"], 3)
	assert.Equal(t, int64(1), markers["2024-06-12"][0].BookingID)
	assert.Equal(t, int64(2), markers["2024-06-12"][1].BookingID)
	assert.Equal(t, int64(3), markers["2024-06-12"][2].BookingID)
}

func TestMarkerColor_EmployeeComparison(t *testing.T) {
	// Режим сравнения: цвет сотрудника из справочника
	b := mkBooking(1, "2024-06-12", "09:00", domain.StatusConfirmed, ptr.Ptr(int64(10)))
	assert.Equal(t, "#3F51B5", markerColor(b, directory, true))

	// Без режима сравнения тот же сотрудник получает статусный цвет
	assert.Equal(t, domain.MarkerColorConfirmed, markerColor(b, directory, false))
}

func TestMarkerColor_EmployeeComparisonFallbacks(t *testing.T) {
	// Сотрудник не назначен — откат к статусному цвету
	unassigned := mkBooking(1, "2024-06-12", "09:00", domain.StatusPending, nil)
	assert.Equal(t, domain.MarkerColorPending, markerColor(unassigned, directory, true))

	// Сотрудник не найден в справочнике
	missing := mkBooking(2, "2024-06-12", "09:00", domain.StatusCancelled, ptr.Ptr(int64(99)))
	assert.Equal(t, domain.MarkerColorCancelled, markerColor(missing, directory, true))

	// Сотрудник без цвета
	colorless := mkBooking(3, "2024-06-12", "09:00", domain.StatusCompleted, ptr.Ptr(int64(30)))
	assert.Equal(t, domain.MarkerColorCompleted, markerColor(colorless, directory, true))
}

func TestAggregateMarkers_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusPending, ptr.Ptr(int64(10))),
		mkBooking(2, "2024-06-13", "10:00", domain.StatusConfirmed, ptr.Ptr(int64(20))),
	}

	first := aggregateMarkers(bookings, directory, true)
	second := aggregateMarkers(bookings, directory, true)

	assert.Equal(t, first, second)
}

func TestFilterByEmployees(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusConfirmed, ptr.Ptr(int64(10))),
		mkBooking(2, "2024-06-12", "10:00", domain.StatusConfirmed, ptr.Ptr(int64(20))),
		mkBooking(3, "2024-06-12", "11:00", domain.StatusConfirmed, nil),
	}

	t.Run("empty selection keeps everything", func(t *testing.T) {
		result := filterByEmployees(bookings, nil)
		assert.Len(t, result, 3)
	})

	t.Run("selection restricts and excludes unassigned", func(t *testing.T) {
		result := filterByEmployees(bookings, []int64{10, 20})
		require.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, int64(2), result[1].ID)
	})
}
