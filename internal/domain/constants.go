package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default calendar grid parameters. The day and week layouts share the
// same vertical arithmetic and differ only in scale.
const (
	DefaultGridStartHour = 8
	DefaultGridEndHour   = 20 // exclusive

	DayGridHourHeightPx    = 80
	DayGridMinHeightPx     = 60
	WeekGridHourHeightPx   = 60
	WeekGridMinHeightPx    = 40
	DefaultDurationMinutes = 60
)

// Marker dot colors for the month view, keyed by status.
const (
	MarkerColorPending     = "#FFC107" // amber
	MarkerColorConfirmed   = "#4CAF50" // green
	MarkerColorCancelled   = "#F44336" // red
	MarkerColorCompleted   = "#9E9E9E" // gray
	MarkerColorPlaceholder = "#BDBDBD" // neutral fallback, display contexts only
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// StatusMarkerColors цвет точки месячного календаря для каждого статуса
var StatusMarkerColors = map[BookingStatus]string{
	StatusPending:   MarkerColorPending,
	StatusConfirmed: MarkerColorConfirmed,
	StatusCancelled: MarkerColorCancelled,
	StatusCompleted: MarkerColorCompleted,
}
