package get_schedule_buckets

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Метки фиксированных групп
const (
	labelToday    = "Today"
	labelTomorrow = "Tomorrow"
	labelThisWeek = "This week"
)

// groupIntoBuckets раскладывает список бронирований по временным группам.
// Чистая функция: результат полностью определяется входным списком и referenceNow.
//
// Якорные даты: today, tomorrow (today+1), weekStart (ближайшее прошедшее воскресенье).
// Классификация каждого бронирования ровно в одну группу:
//   - дата == today → today
//   - дата == tomorrow → tomorrow
//   - weekStart ≤ дата < today → thisWeek (прошедшие дни текущей недели)
//   - дата > tomorrow → later, с подгруппой на каждую неделю (по её воскресенью)
//   - дата < weekStart → отбрасывается
//
// Пустые группы не включаются в результат. Порядок групп фиксированный:
// today, tomorrow, thisWeek, затем недельные группы по возрастанию даты.
func groupIntoBuckets(bookings []*domain.Booking, referenceNow time.Time) []Bucket {
	today := domain.DateOnly(referenceNow)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := domain.WeekStart(today)

	var todayBookings, tomorrowBookings, thisWeekBookings []*domain.Booking
	laterByWeek := make(map[time.Time][]*domain.Booking)

	for _, b := range bookings {
		date := b.DateOnly()
		switch {
		case date.Equal(today):
			todayBookings = append(todayBookings, b)
		case date.Equal(tomorrow):
			tomorrowBookings = append(tomorrowBookings, b)
		case !date.Before(weekStart) && date.Before(today):
			thisWeekBookings = append(thisWeekBookings, b)
		case date.After(tomorrow):
			ws := domain.WeekStart(date)
			laterByWeek[ws] = append(laterByWeek[ws], b)
		}
		// Даты раньше weekStart отбрасываются: экраны показывают
		// либо предстоящие бронирования, либо текущую неделю
	}

	buckets := make([]Bucket, 0, 3+len(laterByWeek))

	if len(todayBookings) > 0 {
		domain.SortByTime(todayBookings)
		buckets = append(buckets, Bucket{
			Kind:       BucketToday,
			Label:      labelToday,
			AnchorDate: today,
			Bookings:   todayBookings,
		})
	}

	if len(tomorrowBookings) > 0 {
		domain.SortByTime(tomorrowBookings)
		buckets = append(buckets, Bucket{
			Kind:       BucketTomorrow,
			Label:      labelTomorrow,
			AnchorDate: tomorrow,
			Bookings:   tomorrowBookings,
		})
	}

	if len(thisWeekBookings) > 0 {
		domain.SortByTime(thisWeekBookings)
		buckets = append(buckets, Bucket{
			Kind:       BucketThisWeek,
			Label:      labelThisWeek,
			AnchorDate: weekStart,
			Bookings:   thisWeekBookings,
		})
	}

	// Недельные группы в порядке возрастания даты начала недели
	weekStarts := make([]time.Time, 0, len(laterByWeek))
	for ws := range laterByWeek {
		weekStarts = append(weekStarts, ws)
	}
	sort.Slice(weekStarts, func(i, j int) bool { return weekStarts[i].Before(weekStarts[j]) })

	for _, ws := range weekStarts {
		weekBookings := laterByWeek[ws]
		domain.SortByTime(weekBookings)
		buckets = append(buckets, Bucket{
			Kind:       BucketLaterWeek,
			Label:      weekLabel(ws),
			AnchorDate: ws,
			Bookings:   weekBookings,
		})
	}

	return buckets
}

// weekLabel формирует метку недельной группы: диапазон дат недели
func weekLabel(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s – %s", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2"))
}
