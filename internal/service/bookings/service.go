package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: отфильтрованные списки
// на чтение и смена статуса через таблицу переходов на запись
type Service struct {
	bookingClient BookingClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingClient, logger Logger) *Service {
	return &Service{
		bookingClient: client,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetBookings получает отфильтрованный и отсортированный список бронирований.
// Измерения фильтра независимы и соединяются по И:
// предстоящие → категория → выбранные сотрудники.
// Результат отсортирован: pending первыми, далее по (дате, времени).
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBookings: place=%d, category=%s, employees=%d, upcomingOnly=%t",
		req.PlaceID, req.Category, len(req.EmployeeIDs), req.UpcomingOnly)

	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	filter, err := req.ToDomainFilter(now)
	if err != nil {
		s.logger.Warn("GetBookings: invalid filter for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingClient.ListBookings(ctx, req.PlaceID, nil, nil)
	if err != nil {
		if errors.Is(err, bookingClient.ErrPlaceNotFound) {
			s.logger.Warn("GetBookings: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("GetBookings: client error for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: GetBookings - client error: %v", ErrInternal, err)
	}

	filtered := filter.Apply(bookings)

	s.logger.Info("GetBookings: %d of %d bookings matched for place=%d",
		len(filtered), len(bookings), req.PlaceID)
	return models.FromDomainBookingList(filtered), nil
}

// UpdateStatus меняет статус бронирования через таблицу переходов.
// Переход в текущий статус отклоняется, остальные переходы разрешены
// намеренно свободной таблицей. Принятое значение отправляется во внешний API.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	s.logger.Info("UpdateStatus: booking=%d, target=%s", bookingID, req.Status)

	targetStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	newStatus, err := domain.Transition(booking.Status, targetStatus)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSameStatus):
			s.logger.Warn("UpdateStatus: booking id=%d already has status=%s", bookingID, targetStatus)
			return nil, ErrSameStatus
		case errors.Is(err, domain.ErrUnknownStatus):
			return nil, ErrInvalidStatus
		default:
			s.logger.Warn("UpdateStatus: transition %s → %s rejected for booking id=%d",
				booking.Status, targetStatus, bookingID)
			return nil, fmt.Errorf("%w: %s → %s", ErrInvalidStatus, booking.Status, targetStatus)
		}
	}

	return s.pushStatus(ctx, bookingID, newStatus, "UpdateStatus")
}

// Accept подтверждает pending бронирование (pending → confirmed)
func (s *Service) Accept(ctx context.Context, bookingID int64) (*models.StatusResponse, error) {
	s.logger.Info("Accept: booking=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "Accept")
	if err != nil {
		return nil, err
	}

	newStatus, err := domain.Accept(booking.Status)
	if err != nil {
		s.logger.Warn("Accept: booking id=%d is not pending, status=%s", bookingID, booking.Status)
		return nil, ErrNotPending
	}

	return s.pushStatus(ctx, bookingID, newStatus, "Accept")
}

// Decline отклоняет pending бронирование (pending → cancelled)
func (s *Service) Decline(ctx context.Context, bookingID int64) (*models.StatusResponse, error) {
	s.logger.Info("Decline: booking=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "Decline")
	if err != nil {
		return nil, err
	}

	newStatus, err := domain.Decline(booking.Status)
	if err != nil {
		s.logger.Warn("Decline: booking id=%d is not pending, status=%s", bookingID, booking.Status)
		return nil, ErrNotPending
	}

	return s.pushStatus(ctx, bookingID, newStatus, "Decline")
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, bookingID int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingClient.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: client error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - client error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) pushStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, op string) (*models.StatusResponse, error) {
	if err := s.bookingClient.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found during update", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: failed to push status for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to push status: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: booking id=%d moved to status=%s", op, bookingID, status)
	return &models.StatusResponse{
		BookingID: bookingID,
		Status:    string(status),
	}, nil
}
