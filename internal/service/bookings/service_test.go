package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Опорная дата: среда 2024-06-12
var testNow = time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeBookingClient in-memory реализация внешнего API бронирований
type fakeBookingClient struct {
	bookings map[int64]*domain.Booking
	pushed   map[int64]domain.BookingStatus

	listErr error
}

func newFakeBookingClient(bookings ...*domain.Booking) *fakeBookingClient {
	c := &fakeBookingClient{
		bookings: make(map[int64]*domain.Booking),
		pushed:   make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		c.bookings[b.ID] = b
	}
	return c
}

func (c *fakeBookingClient) ListBookings(ctx context.Context, placeID int64, from, to *time.Time) ([]*domain.Booking, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	var result []*domain.Booking
	for _, b := range c.bookings {
		if b.PlaceID == placeID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (c *fakeBookingClient) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, ok := c.bookings[bookingID]
	if !ok {
		return nil, bookingClient.ErrBookingNotFound
	}
	return b, nil
}

func (c *fakeBookingClient) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	if _, ok := c.bookings[bookingID]; !ok {
		return bookingClient.ErrBookingNotFound
	}
	c.pushed[bookingID] = status
	return nil
}

func newTestService(client BookingClient) *Service {
	svc := NewService(client, noopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: testNow}
	return svc
}

func mkBooking(id int64, date string, startTime string, status domain.BookingStatus) *domain.Booking {
	day, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ID:          id,
		PlaceID:     1,
		BookingDate: day,
		StartTime:   types.TimeString(startTime),
		Status:      status,
	}
}

func TestService_GetBookings_FiltersAndSorts(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusConfirmed),
		mkBooking(2, "2024-06-13", "09:00", domain.StatusPending),
		mkBooking(3, "2024-06-12", "09:00", domain.StatusConfirmed), // раньше now
		mkBooking(4, "2024-06-14", "10:00", domain.StatusCancelled), // отменено
	)
	svc := newTestService(client)

	resp, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{
		PlaceID:      1,
		UpcomingOnly: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	// pending первым, затем по (дате, времени)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, int64(1), resp.Bookings[1].ID)
}

func TestService_GetBookings_InvalidCategory(t *testing.T) {
	svc := newTestService(newFakeBookingClient())

	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{
		PlaceID:  1,
		Category: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBookings_InvalidPlaceID(t *testing.T) {
	svc := newTestService(newFakeBookingClient())

	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{PlaceID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBookings_PlaceNotFound(t *testing.T) {
	client := newFakeBookingClient()
	client.listErr = bookingClient.ErrPlaceNotFound
	svc := newTestService(client)

	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{PlaceID: 7})
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusConfirmed),
	)
	svc := newTestService(client)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, client.pushed[1])
}

func TestService_UpdateStatus_SameStatusRejected(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusConfirmed),
	)
	svc := newTestService(client)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrSameStatus)
	assert.Empty(t, client.pushed)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusConfirmed),
	)
	svc := newTestService(client)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_BookingNotFound(t *testing.T) {
	svc := newTestService(newFakeBookingClient())

	_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Accept(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusPending),
	)
	svc := newTestService(client)

	resp, err := svc.Accept(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, client.pushed[1])
}

func TestService_Accept_NotPending(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusCancelled),
	)
	svc := newTestService(client)

	_, err := svc.Accept(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Empty(t, client.pushed)
}

func TestService_Decline(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusPending),
	)
	svc := newTestService(client)

	resp, err := svc.Decline(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, client.pushed[1])
}

func TestService_Decline_NotPending(t *testing.T) {
	client := newFakeBookingClient(
		mkBooking(1, "2024-06-12", "15:00", domain.StatusCompleted),
	)
	svc := newTestService(client)

	_, err := svc.Decline(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotPending)
}
