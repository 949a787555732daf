package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a single booking record as fetched from the booking API.
// The record is a read-only snapshot: nothing in this service mutates it,
// a status change produces a new value that the caller sends upstream.
type Booking struct {
	ID          int64
	PlaceID     int64
	EmployeeID  *int64 // nil when the booking is not assigned to an employee
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	// Display-only attributes, never reasoned over by the engine
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceName   string
	TotalPrice    decimal.Decimal
}

// DateOnly returns the booking date normalized to local midnight.
func (b *Booking) DateOnly() time.Time {
	return DateOnly(b.BookingDate)
}

// IsUpcoming returns true if the booking starts at or after now
// and has not been cancelled.
func (b *Booking) IsUpcoming(now time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}
	day := b.DateOnly()
	today := DateOnly(now)
	if day.After(today) {
		return true
	}
	if day.Before(today) {
		return false
	}
	return !b.StartTime.IsBefore(types.NewTimeString(now))
}

// IsOnDate returns true if the booking falls on the given calendar date.
func (b *Booking) IsOnDate(date time.Time) bool {
	return b.DateOnly().Equal(DateOnly(date))
}

// Before orders two bookings by (booking_date, booking_time).
func (b *Booking) Before(other *Booking) bool {
	d1, d2 := b.DateOnly(), other.DateOnly()
	if !d1.Equal(d2) {
		return d1.Before(d2)
	}
	return b.StartTime.IsBefore(other.StartTime)
}

// DateOnly normalizes a timestamp to local midnight so that only the
// calendar date takes part in comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the most recent Sunday on or before the given date.
func WeekStart(t time.Time) time.Time {
	day := DateOnly(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// ValidateStatus checks that a raw status value belongs to the closed
// four-value enumeration. Records with any other value are a data error
// and must be rejected at the boundary, not defaulted.
func ValidateStatus(status BookingStatus) error {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return nil
	}
	return ErrUnknownStatus
}
