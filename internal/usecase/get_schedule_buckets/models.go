package get_schedule_buckets

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BucketKind вид временной группы
type BucketKind string

const (
	BucketToday     BucketKind = "today"
	BucketTomorrow  BucketKind = "tomorrow"
	BucketThisWeek  BucketKind = "thisWeek"
	BucketLaterWeek BucketKind = "laterWeek"
)

// Request модель запроса на получение расписания, сгруппированного по времени
type Request struct {
	PlaceID     int64                 // ID точки обслуживания
	Category    domain.FilterCategory // Категория фильтра (пустая = all)
	EmployeeIDs []int64               // Выбранные сотрудники (пустой набор = без ограничения)

	// IncludeHistory отключает предварительный фильтр "только предстоящие".
	// Группа thisWeek (прошедшие дни текущей недели) достижима только с ним.
	IncludeHistory bool
}

// Response модель ответа с упорядоченной последовательностью групп
type Response struct {
	PlaceID     int64
	GeneratedAt time.Time // referenceNow, от которого считались якорные даты
	Buckets     []Bucket
}

// Bucket именованная временная группа бронирований
type Bucket struct {
	Kind       BucketKind
	Label      string
	AnchorDate time.Time         // дата-якорь группы (день или начало недели)
	Bookings   []*domain.Booking // отсортированы по (дате, времени)
}
