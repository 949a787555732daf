package get_week_grid

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	serviceModels "github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
	gridUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_grid"
)

// ToUseCaseRequest формирует запрос к use case из query параметров.
// date может быть любой датой целевой недели.
func ToUseCaseRequest(placeID int64, dateStr, employeeIDsStr string) (*gridUC.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	employeeIDs, err := handlers.ParseInt64List(employeeIDsStr)
	if err != nil {
		return nil, err
	}

	return &gridUC.Request{
		PlaceID:     placeID,
		Variant:     gridUC.VariantWeek,
		Date:        date,
		EmployeeIDs: employeeIDs,
	}, nil
}

// Response модель ответа с позициями недельной сетки
type Response struct {
	PlaceID       int64         `json:"placeId"`
	WeekStart     string        `json:"weekStart"` // YYYY-MM-DD, воскресенье
	GridStartHour int           `json:"gridStartHour"`
	GridEndHour   int           `json:"gridEndHour"`
	HourHeightPx  float64       `json:"hourHeightPx"`
	MinHeightPx   float64       `json:"minHeightPx"`
	Positions     []PositionDTO `json:"positions"`
}

// PositionDTO бронирование с вычисленной позицией в сетке.
// DayColumn - горизонтальное смещение дня от начала недели (0-6).
type PositionDTO struct {
	Booking   serviceModels.BookingResponse `json:"booking"`
	TopPx     float64                       `json:"topPx"`
	HeightPx  float64                       `json:"heightPx"`
	DayColumn int                           `json:"dayColumn"`
}

// FromUseCaseResponse конвертирует ответ use case в DTO
func FromUseCaseResponse(resp *gridUC.Response) *Response {
	out := &Response{
		PlaceID:       resp.PlaceID,
		WeekStart:     resp.WeekStart.Format(domain.DateFormat),
		GridStartHour: resp.GridStartHour,
		GridEndHour:   resp.GridEndHour,
		HourHeightPx:  resp.HourHeightPx,
		MinHeightPx:   resp.MinHeightPx,
		Positions:     make([]PositionDTO, 0, len(resp.Positions)),
	}

	for _, placed := range resp.Positions {
		out.Positions = append(out.Positions, PositionDTO{
			Booking:   *serviceModels.FromDomainBooking(placed.Booking),
			TopPx:     placed.TopPx,
			HeightPx:  placed.HeightPx,
			DayColumn: placed.DayColumn,
		})
	}

	return out
}
