package get_month_markers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BookingClient интерфейс клиента внешнего API бронирований
type BookingClient interface {
	ListBookings(ctx context.Context, placeID int64, from, to *time.Time) ([]*domain.Booking, error)
}

// StaffClient интерфейс клиента справочника сотрудников
type StaffClient interface {
	ListEmployeesWithGracefulDegradation(ctx context.Context, placeID int64) (domain.EmployeeDirectory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
