package get_schedule_buckets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Опорная дата: среда 2024-06-12, начало недели — воскресенье 2024-06-09
var referenceNow = time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)

func mkBooking(id int64, date string, startTime string) *domain.Booking {
	day, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ID:          id,
		PlaceID:     1,
		BookingDate: day,
		StartTime:   types.TimeString(startTime),
		Status:      domain.StatusConfirmed,
	}
}

func TestGroupIntoBuckets_TodayTomorrowAndLaterWeek(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00"),
		mkBooking(2, "2024-06-13", "10:00"),
		mkBooking(3, "2024-06-20", "11:00"),
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	require.Len(t, buckets, 3)

	assert.Equal(t, BucketToday, buckets[0].Kind)
	assert.Equal(t, "Today", buckets[0].Label)
	require.Len(t, buckets[0].Bookings, 1)
	assert.Equal(t, int64(1), buckets[0].Bookings[0].ID)

	assert.Equal(t, BucketTomorrow, buckets[1].Kind)
	assert.Equal(t, "Tomorrow", buckets[1].Label)
	require.Len(t, buckets[1].Bookings, 1)
	assert.Equal(t, int64(2), buckets[1].Bookings[0].ID)

	// 2024-06-20 — четверг следующей недели, начало недели 2024-06-16
	assert.Equal(t, BucketLaterWeek, buckets[2].Kind)
	assert.Equal(t, "2024-06-16", buckets[2].AnchorDate.Format(domain.DateFormat))
	require.Len(t, buckets[2].Bookings, 1)
	assert.Equal(t, int64(3), buckets[2].Bookings[0].ID)
}

func TestGroupIntoBuckets_EmptyBucketsOmitted(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00"),
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	require.Len(t, buckets, 1)
	assert.Equal(t, BucketToday, buckets[0].Kind)
}

func TestGroupIntoBuckets_ThisWeek(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-09", "09:00"), // воскресенье, начало недели
		mkBooking(2, "2024-06-11", "10:00"), // вчера
		mkBooking(3, "2024-06-08", "11:00"), // до начала недели — отбрасывается
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	require.Len(t, buckets, 1)
	assert.Equal(t, BucketThisWeek, buckets[0].Kind)
	assert.Equal(t, "This week", buckets[0].Label)
	assert.Equal(t, "2024-06-09", buckets[0].AnchorDate.Format(domain.DateFormat))
	require.Len(t, buckets[0].Bookings, 2)
	assert.Equal(t, int64(1), buckets[0].Bookings[0].ID)
	assert.Equal(t, int64(2), buckets[0].Bookings[1].ID)
}

func TestGroupIntoBuckets_EachBookingInExactlyOneBucket(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-09", "09:00"),
		mkBooking(2, "2024-06-12", "10:00"),
		mkBooking(3, "2024-06-13", "11:00"),
		mkBooking(4, "2024-06-14", "12:00"),
		mkBooking(5, "2024-06-20", "13:00"),
		mkBooking(6, "2024-06-25", "14:00"),
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	seen := make(map[int64]int)
	for _, bucket := range buckets {
		for _, b := range bucket.Bookings {
			seen[b.ID]++
		}
	}
	require.Len(t, seen, len(bookings))
	for id, count := range seen {
		assert.Equal(t, 1, count, "booking %d", id)
	}
}

func TestGroupIntoBuckets_LaterWeeksGroupedAndOrdered(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-26", "09:00"), // неделя 2024-06-23
		mkBooking(2, "2024-06-17", "10:00"), // неделя 2024-06-16
		mkBooking(3, "2024-06-20", "08:00"), // неделя 2024-06-16
		mkBooking(4, "2024-06-14", "11:00"), // пятница текущей недели, позже завтра
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	require.Len(t, buckets, 3)
	for _, bucket := range buckets {
		assert.Equal(t, BucketLaterWeek, bucket.Kind)
	}

	assert.Equal(t, "2024-06-09", buckets[0].AnchorDate.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-16", buckets[1].AnchorDate.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-23", buckets[2].AnchorDate.Format(domain.DateFormat))

	// Внутри недельной группы — сортировка по (дате, времени)
	require.Len(t, buckets[1].Bookings, 2)
	assert.Equal(t, int64(2), buckets[1].Bookings[0].ID)
	assert.Equal(t, int64(3), buckets[1].Bookings[1].ID)
}

func TestGroupIntoBuckets_SortsWithinBucketByTime(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "15:00"),
		mkBooking(2, "2024-06-12", "09:00"),
		mkBooking(3, "2024-06-12", "11:30"),
	}

	buckets := groupIntoBuckets(bookings, referenceNow)

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Bookings, 3)
	assert.Equal(t, int64(2), buckets[0].Bookings[0].ID)
	assert.Equal(t, int64(3), buckets[0].Bookings[1].ID)
	assert.Equal(t, int64(1), buckets[0].Bookings[2].ID)
}

func TestGroupIntoBuckets_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "2024-06-12", "09:00"),
		mkBooking(2, "2024-06-13", "10:00"),
		mkBooking(3, "2024-06-20", "11:00"),
	}

	first := groupIntoBuckets(bookings, referenceNow)
	second := groupIntoBuckets(bookings, referenceNow)

	assert.Equal(t, first, second)
}

func TestGroupIntoBuckets_Empty(t *testing.T) {
	buckets := groupIntoBuckets(nil, referenceNow)
	assert.Empty(t, buckets)
}

func TestWeekLabel(t *testing.T) {
	ws := time.Date(2024, 6, 16, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Jun 16 – Jun 22", weekLabel(ws))
}
