package get_bookings

import (
	"strconv"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(placeID int64, categoryStr, employeeIDsStr, upcomingStr string) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{
		PlaceID:  placeID,
		Category: categoryStr,
	}

	// Парсим employeeIds если указаны
	employeeIDs, err := handlers.ParseInt64List(employeeIDsStr)
	if err != nil {
		return nil, err
	}
	req.EmployeeIDs = employeeIDs

	// Парсим upcoming если указан
	if upcomingStr != "" {
		upcoming, err := strconv.ParseBool(upcomingStr)
		if err != nil {
			return nil, err
		}
		req.UpcomingOnly = upcoming
	}

	return req, nil
}
