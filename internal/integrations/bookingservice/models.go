package bookingservice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BookingDTO модель бронирования из BookingService
type BookingDTO struct {
	ID            int64  `json:"id"`
	PlaceID       int64  `json:"place_id"`
	EmployeeID    *int64 `json:"employee_id,omitempty"`
	BookingDate   string `json:"booking_date"` // "2024-06-12"
	BookingTime   string `json:"booking_time"` // "14:30"
	Status        string `json:"status"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceName   string `json:"service_name"`
	TotalPrice    string `json:"total_price"` // десятичная строка, например "45.00"
}

// BookingListDTO список бронирований из BookingService
type BookingListDTO struct {
	Bookings []BookingDTO `json:"bookings"`
}

// UpdateStatusDTO запрос на обновление статуса
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует DTO в domain модель, отбрасывая записи
// с некорректной датой, временем или статусом
func (d *BookingDTO) ToDomain() (*domain.Booking, error) {
	// Дата парсится в локальной зоне: все сравнения календарных дат
	// в domain идут относительно локальной полуночи
	date, err := time.ParseInLocation(domain.DateFormat, d.BookingDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid booking_date %q: %v", d.BookingDate, err)
	}

	startTime, err := types.NewTimeStringFromString(d.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking_time: %v", err)
	}

	status := domain.BookingStatus(d.Status)
	if err := domain.ValidateStatus(status); err != nil {
		return nil, fmt.Errorf("%v: %q", err, d.Status)
	}

	price := decimal.Zero
	if d.TotalPrice != "" {
		price, err = decimal.NewFromString(d.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid total_price %q: %v", d.TotalPrice, err)
		}
	}

	return &domain.Booking{
		ID:            d.ID,
		PlaceID:       d.PlaceID,
		EmployeeID:    d.EmployeeID,
		BookingDate:   date,
		StartTime:     startTime,
		Status:        status,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		ServiceName:   d.ServiceName,
		TotalPrice:    price,
	}, nil
}
