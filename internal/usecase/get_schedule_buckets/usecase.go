package get_schedule_buckets

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
)

// UseCase use case для получения расписания, сгруппированного по временным группам
type UseCase struct {
	bookingClient BookingClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingClient, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: client,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case группировки расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleBuckets: place=%d, category=%s, employees=%d, includeHistory=%t",
		req.PlaceID, req.Category, len(req.EmployeeIDs), req.IncludeHistory)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetScheduleBuckets: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время - единая точка отсчета для всех якорных дат
	now := uc.timeProvider.Now()

	// 3. Получаем снимок бронирований от внешнего API.
	// Нижняя граница - начало текущей недели: более ранние даты не попадают
	// ни в одну группу
	weekStart := domain.WeekStart(now)
	bookings, err := uc.bookingClient.ListBookings(ctx, req.PlaceID, &weekStart, nil)
	if err != nil {
		if errors.Is(err, bookingClient.ErrPlaceNotFound) {
			uc.logger.Warn("GetScheduleBuckets: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("GetScheduleBuckets: failed to list bookings for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Применяем композицию фильтров: предстоящие → категория → сотрудники
	filter := domain.BookingFilter{
		Category:     req.Category,
		EmployeeIDs:  req.EmployeeIDs,
		UpcomingOnly: !req.IncludeHistory,
		Now:          now,
	}
	filtered := filter.Apply(bookings)

	// 5. Раскладываем по временным группам
	buckets := groupIntoBuckets(filtered, now)

	uc.logger.Info("GetScheduleBuckets: produced %d buckets from %d bookings for place=%d",
		len(buckets), len(filtered), req.PlaceID)

	return &Response{
		PlaceID:     req.PlaceID,
		GeneratedAt: now,
		Buckets:     buckets,
	}, nil
}
