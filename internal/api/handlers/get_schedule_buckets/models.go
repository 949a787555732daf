package get_schedule_buckets

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	serviceModels "github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
	bucketsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_schedule_buckets"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(placeID int64, categoryStr, employeeIDsStr, includeHistoryStr string) (*bucketsUC.Request, error) {
	req := &bucketsUC.Request{
		PlaceID:  placeID,
		Category: domain.FilterCategory(categoryStr),
	}

	employeeIDs, err := handlers.ParseInt64List(employeeIDsStr)
	if err != nil {
		return nil, err
	}
	req.EmployeeIDs = employeeIDs

	if includeHistoryStr != "" {
		includeHistory, err := strconv.ParseBool(includeHistoryStr)
		if err != nil {
			return nil, err
		}
		req.IncludeHistory = includeHistory
	}

	return req, nil
}

// Response модель ответа со списком временных групп
type Response struct {
	PlaceID     int64       `json:"placeId"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Buckets     []BucketDTO `json:"buckets"`
}

// BucketDTO временная группа бронирований
type BucketDTO struct {
	Kind       string                          `json:"kind"`
	Label      string                          `json:"label"`
	AnchorDate string                          `json:"anchorDate"` // YYYY-MM-DD
	Bookings   []serviceModels.BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в DTO
func FromUseCaseResponse(resp *bucketsUC.Response) *Response {
	out := &Response{
		PlaceID:     resp.PlaceID,
		GeneratedAt: resp.GeneratedAt,
		Buckets:     make([]BucketDTO, 0, len(resp.Buckets)),
	}

	for _, bucket := range resp.Buckets {
		dto := BucketDTO{
			Kind:       string(bucket.Kind),
			Label:      bucket.Label,
			AnchorDate: bucket.AnchorDate.Format(domain.DateFormat),
			Bookings:   serviceModels.FromDomainBookingList(bucket.Bookings).Bookings,
		}
		out.Buckets = append(out.Buckets, dto)
	}

	return out
}
