package get_calendar_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
)

// UseCase use case для расчета позиций бронирований в календарной сетке
type UseCase struct {
	bookingClient BookingClient
	gridStartHour int
	gridEndHour   int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// gridStartHour/gridEndHour задают диапазон часов сетки (обычно 8-20).
func NewUseCase(client BookingClient, gridStartHour, gridEndHour int, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: client,
		gridStartHour: gridStartHour,
		gridEndHour:   gridEndHour,
		logger:        logger,
	}
}

// Execute выполняет use case расчета сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarGrid: place=%d, variant=%s, date=%s",
		req.PlaceID, req.Variant, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем период и параметры сетки по варианту
	date := domain.DateOnly(req.Date)
	weekStart := domain.WeekStart(date)

	cfg := gridConfig{
		StartHour: uc.gridStartHour,
		EndHour:   uc.gridEndHour,
	}

	rangeFrom := date
	rangeTo := date
	switch req.Variant {
	case VariantDay:
		cfg.HourHeightPx = domain.DayGridHourHeightPx
		cfg.MinHeightPx = domain.DayGridMinHeightPx
	case VariantWeek:
		cfg.HourHeightPx = domain.WeekGridHourHeightPx
		cfg.MinHeightPx = domain.WeekGridMinHeightPx
		rangeFrom = weekStart
		rangeTo = weekStart.AddDate(0, 0, 6)
	}

	// 3. Получаем снимок бронирований за период
	bookings, err := uc.bookingClient.ListBookings(ctx, req.PlaceID, &rangeFrom, &rangeTo)
	if err != nil {
		if errors.Is(err, bookingClient.ErrPlaceNotFound) {
			uc.logger.Warn("GetCalendarGrid: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("GetCalendarGrid: failed to list bookings for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Фильтр по выбранным сотрудникам (пустой набор ничего не ограничивает)
	filter := domain.BookingFilter{EmployeeIDs: req.EmployeeIDs}
	filtered := filter.Apply(bookings)
	domain.SortByTime(filtered)

	// 5. Вычисляем позицию каждого бронирования.
	// Некорректное время - ошибка данных, не молчаливый дефолт
	positions := make([]PlacedBooking, 0, len(filtered))
	for _, b := range filtered {
		top, height, err := position(b.StartTime, domain.DefaultDurationMinutes, cfg)
		if err != nil {
			uc.logger.Error("GetCalendarGrid: invalid start time for booking id=%d: %v", b.ID, err)
			return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInternal, b.ID, err)
		}

		placed := PlacedBooking{
			Booking:  b,
			TopPx:    top,
			HeightPx: height,
		}
		if req.Variant == VariantWeek {
			placed.DayColumn = dayColumn(weekStart, b.DateOnly())
		}
		positions = append(positions, placed)
	}

	uc.logger.Info("GetCalendarGrid: placed %d bookings for place=%d, variant=%s",
		len(positions), req.PlaceID, req.Variant)

	resp := &Response{
		PlaceID:       req.PlaceID,
		Variant:       req.Variant,
		Date:          date,
		GridStartHour: uc.gridStartHour,
		GridEndHour:   uc.gridEndHour,
		HourHeightPx:  cfg.HourHeightPx,
		MinHeightPx:   cfg.MinHeightPx,
		Positions:     positions,
	}
	if req.Variant == VariantWeek {
		resp.WeekStart = weekStart
	}
	return resp, nil
}
