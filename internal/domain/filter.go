package domain

import (
	"sort"
	"time"
)

// FilterCategory is the single-choice category dimension of the booking filter.
type FilterCategory string

const (
	CategoryAll      FilterCategory = "all"
	CategoryPending  FilterCategory = "pending"
	CategoryToday    FilterCategory = "today"
	CategoryWeek     FilterCategory = "week"
	CategoryEmployee FilterCategory = "employee"
)

// ValidateCategory checks that a raw category value is recognized.
func ValidateCategory(category FilterCategory) error {
	switch category {
	case CategoryAll, CategoryPending, CategoryToday, CategoryWeek, CategoryEmployee:
		return nil
	}
	return ErrUnknownCategory
}

// BookingFilter combines the independent filter dimensions into one predicate.
// Dimensions are conjunctive and applied in a fixed order:
// upcoming restriction → category → employee selection.
//
// An empty employee selection is default-open: it restricts nothing.
type BookingFilter struct {
	Category     FilterCategory
	EmployeeIDs  []int64
	UpcomingOnly bool
	Now          time.Time
}

// Apply filters the list and returns a new, sorted slice. The input is never
// modified. The result is ordered pending-first, then ascending by
// (booking_date, booking_time); the sort is stable.
func (f BookingFilter) Apply(bookings []*Booking) []*Booking {
	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.matches(b) {
			result = append(result, b)
		}
	}
	SortPendingFirst(result)
	return result
}

func (f BookingFilter) matches(b *Booking) bool {
	if f.UpcomingOnly && !b.IsUpcoming(f.Now) {
		return false
	}
	if !f.matchesCategory(b) {
		return false
	}
	return f.matchesEmployee(b)
}

func (f BookingFilter) matchesCategory(b *Booking) bool {
	switch f.Category {
	case CategoryPending:
		return b.Status == StatusPending
	case CategoryToday:
		return b.IsOnDate(f.Now)
	case CategoryWeek:
		weekStart := WeekStart(f.Now)
		day := b.DateOnly()
		return !day.Before(weekStart) && day.Before(weekStart.AddDate(0, 0, 7))
	case CategoryEmployee:
		// The category itself is a no-op: the restriction comes from the
		// employee selection, which is applied as its own dimension.
		return true
	default:
		return true
	}
}

func (f BookingFilter) matchesEmployee(b *Booking) bool {
	if len(f.EmployeeIDs) == 0 {
		return true
	}
	if b.EmployeeID == nil {
		return false
	}
	for _, id := range f.EmployeeIDs {
		if id == *b.EmployeeID {
			return true
		}
	}
	return false
}

// SortPendingFirst sorts bookings in place: pending records first regardless
// of time, then strictly ascending by (booking_date, booking_time).
func SortPendingFirst(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		pi, pj := bookings[i].Status == StatusPending, bookings[j].Status == StatusPending
		if pi != pj {
			return pi
		}
		return bookings[i].Before(bookings[j])
	})
}

// SortByTime sorts bookings in place ascending by (booking_date, booking_time).
func SortByTime(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Before(bookings[j])
	})
}
