package get_month_markers

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	markersUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_month_markers"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

const monthLayout = "2006-01"

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(placeID int64, monthStr, selectedDateStr, employeeIDsStr string) (*markersUC.Request, error) {
	month, err := time.ParseInLocation(monthLayout, monthStr, time.Local)
	if err != nil {
		return nil, err
	}

	req := &markersUC.Request{
		PlaceID: placeID,
		Month:   month,
	}

	if selectedDateStr != "" {
		selectedDate, err := time.ParseInLocation(domain.DateFormat, selectedDateStr, time.Local)
		if err != nil {
			return nil, err
		}
		req.SelectedDate = ptr.Ptr(selectedDate)
	}

	employeeIDs, err := handlers.ParseInt64List(employeeIDsStr)
	if err != nil {
		return nil, err
	}
	req.EmployeeIDs = employeeIDs

	return req, nil
}

// Response модель ответа с маркерами месячного календаря
type Response struct {
	PlaceID            int64                  `json:"placeId"`
	Month              string                 `json:"month"` // YYYY-MM
	Markers            map[string][]MarkerDTO `json:"markers"`
	SelectedDate       string                 `json:"selectedDate,omitempty"`
	EmployeeComparison bool                   `json:"employeeComparison"`
}

// MarkerDTO цветная точка одного бронирования
type MarkerDTO struct {
	BookingID int64  `json:"bookingId"`
	Color     string `json:"color"`
}

// FromUseCaseResponse конвертирует ответ use case в DTO
func FromUseCaseResponse(resp *markersUC.Response) *Response {
	out := &Response{
		PlaceID:            resp.PlaceID,
		Month:              resp.Month.Format(monthLayout),
		Markers:            make(map[string][]MarkerDTO, len(resp.Markers)),
		SelectedDate:       resp.SelectedDate,
		EmployeeComparison: resp.EmployeeComparison,
	}

	for date, markers := range resp.Markers {
		dtos := make([]MarkerDTO, 0, len(markers))
		for _, m := range markers {
			dtos = append(dtos, MarkerDTO{BookingID: m.BookingID, Color: m.Color})
		}
		out.Markers[date] = dtos
	}

	return out
}
