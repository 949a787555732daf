package get_month_markers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
	staffClient "github.com/m04kA/SMC-CalendarService/internal/integrations/staffservice"
)

// UseCase use case для агрегации маркеров месячного календаря
type UseCase struct {
	bookingClient BookingClient
	staffClient   StaffClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(booking BookingClient, staff StaffClient, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: booking,
		staffClient:   staff,
		logger:        logger,
	}
}

// Execute выполняет use case агрегации маркеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthMarkers: place=%d, month=%s, employees=%d",
		req.PlaceID, req.Month.Format("2006-01"), len(req.EmployeeIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthMarkers: validation failed: %v", err)
		return nil, err
	}

	// 2. Границы месяца
	monthStart := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	// 3. Получаем снимок бронирований за месяц
	bookings, err := uc.bookingClient.ListBookings(ctx, req.PlaceID, &monthStart, &monthEnd)
	if err != nil {
		if errors.Is(err, bookingClient.ErrPlaceNotFound) {
			uc.logger.Warn("GetMonthMarkers: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("GetMonthMarkers: failed to list bookings for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Фильтр по выбранным сотрудникам с сохранением порядка входного списка:
	// месячный календарь показывает точки в порядке списка, не по времени
	filtered := filterByEmployees(bookings, req.EmployeeIDs)

	// 5. Режим сравнения сотрудников активен при выборе 2+ сотрудников.
	// Справочник получаем с graceful degradation: при недоступности
	// StaffService откатываемся на статусные цвета
	compareEmployees := len(req.EmployeeIDs) >= 2
	var directory domain.EmployeeDirectory
	if compareEmployees {
		directory, err = uc.staffClient.ListEmployeesWithGracefulDegradation(ctx, req.PlaceID)
		if err != nil {
			if errors.Is(err, staffClient.ErrPlaceNotFound) {
				uc.logger.Warn("GetMonthMarkers: place id=%d not found in staff service", req.PlaceID)
				return nil, ErrPlaceNotFound
			}
			// Справочник недоступен - маркеры остаются в статусном режиме
			uc.logger.Warn("GetMonthMarkers: staff directory unavailable, falling back to status colors: %v", err)
			compareEmployees = false
			directory = nil
		}
	}

	// 6. Агрегируем маркеры по датам
	markers := aggregateMarkers(filtered, directory, compareEmployees)

	uc.logger.Info("GetMonthMarkers: aggregated markers for %d dates from %d bookings, place=%d",
		len(markers), len(filtered), req.PlaceID)

	resp := &Response{
		PlaceID:            req.PlaceID,
		Month:              monthStart,
		Markers:            markers,
		EmployeeComparison: compareEmployees,
	}
	if req.SelectedDate != nil {
		resp.SelectedDate = domain.DateOnly(*req.SelectedDate).Format(domain.DateFormat)
	}
	return resp, nil
}
