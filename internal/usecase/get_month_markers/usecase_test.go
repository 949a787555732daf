package get_month_markers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	staffClient "github.com/m04kA/SMC-CalendarService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingClient struct {
	bookings []*domain.Booking
	err      error

	gotFrom, gotTo *time.Time
}

func (c *fakeBookingClient) ListBookings(ctx context.Context, placeID int64, from, to *time.Time) ([]*domain.Booking, error) {
	c.gotFrom, c.gotTo = from, to
	if c.err != nil {
		return nil, c.err
	}
	return c.bookings, nil
}

type fakeStaffClient struct {
	directory domain.EmployeeDirectory
	err       error
}

func (c *fakeStaffClient) ListEmployeesWithGracefulDegradation(ctx context.Context, placeID int64) (domain.EmployeeDirectory, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.directory, nil
}

func TestUseCase_Execute_StatusMode(t *testing.T) {
	booking := &fakeBookingClient{bookings: []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusCancelled, ptr.Ptr(int64(10))),
	}}
	staff := &fakeStaffClient{directory: directory}
	uc := NewUseCase(booking, staff, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID: 1,
		Month:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.False(t, resp.EmployeeComparison)
	require.Len(t, resp.Markers["2024-06-12"], 1)
	// Статусный цвет, даже если у сотрудника есть свой
	assert.Equal(t, domain.MarkerColorCancelled, resp.Markers["2024-06-12"][0].Color)

	// Диапазон запроса покрывает весь месяц
	require.NotNil(t, booking.gotFrom)
	require.NotNil(t, booking.gotTo)
	assert.Equal(t, "2024-06-01", booking.gotFrom.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-30", booking.gotTo.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-01", resp.Month.Format(domain.DateFormat))
}

func TestUseCase_Execute_EmployeeComparison(t *testing.T) {
	booking := &fakeBookingClient{bookings: []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusConfirmed, ptr.Ptr(int64(10))),
		mkBooking(2, "2024-06-12", "10:00", domain.StatusConfirmed, ptr.Ptr(int64(20))),
		mkBooking(3, "2024-06-12", "11:00", domain.StatusConfirmed, ptr.Ptr(int64(99))), // не выбран
	}}
	staff := &fakeStaffClient{directory: directory}
	uc := NewUseCase(booking, staff, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID:     1,
		Month:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		EmployeeIDs: []int64{10, 20},
	})
	require.NoError(t, err)

	assert.True(t, resp.EmployeeComparison)
	require.Len(t, resp.Markers["2024-06-12"], 2)
	assert.Equal(t, "#3F51B5", resp.Markers["2024-06-12"][0].Color)
	assert.Equal(t, "#009688", resp.Markers["2024-06-12"][1].Color)
}

func TestUseCase_Execute_StaffDegradationFallsBackToStatusColors(t *testing.T) {
	booking := &fakeBookingClient{bookings: []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusPending, ptr.Ptr(int64(10))),
		mkBooking(2, "2024-06-12", "10:00", domain.StatusConfirmed, ptr.Ptr(int64(20))),
	}}
	staff := &fakeStaffClient{err: staffClient.ErrServiceDegraded}
	uc := NewUseCase(booking, staff, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID:     1,
		Month:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		EmployeeIDs: []int64{10, 20},
	})
	require.NoError(t, err)

	assert.False(t, resp.EmployeeComparison)
	require.Len(t, resp.Markers["2024-06-12"], 2)
	assert.Equal(t, domain.MarkerColorPending, resp.Markers["2024-06-12"][0].Color)
	assert.Equal(t, domain.MarkerColorConfirmed, resp.Markers["2024-06-12"][1].Color)
}

func TestUseCase_Execute_StaffPlaceNotFound(t *testing.T) {
	booking := &fakeBookingClient{bookings: []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00", domain.StatusPending, ptr.Ptr(int64(10))),
	}}
	staff := &fakeStaffClient{err: staffClient.ErrPlaceNotFound}
	uc := NewUseCase(booking, staff, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PlaceID:     1,
		Month:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		EmployeeIDs: []int64{10, 20},
	})
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestUseCase_Execute_SelectedDate(t *testing.T) {
	booking := &fakeBookingClient{}
	uc := NewUseCase(booking, &fakeStaffClient{}, noopLogger{})

	selected := time.Date(2024, 6, 18, 14, 30, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID:      1,
		Month:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		SelectedDate: &selected,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-18", resp.SelectedDate)
	assert.Empty(t, resp.Markers)
}
