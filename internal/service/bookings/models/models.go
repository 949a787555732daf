package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidCategory возвращается при некорректной категории фильтра
	ErrInvalidCategory = errors.New("invalid filter category")
)

// Request модели

// GetBookingsRequest запрос на получение отфильтрованного списка бронирований
type GetBookingsRequest struct {
	PlaceID      int64   `json:"placeId"`
	Category     string  `json:"category,omitempty"`     // all | pending | today | week | employee
	EmployeeIDs  []int64 `json:"employeeIds,omitempty"`  // пустой набор = без ограничения
	UpcomingOnly bool    `json:"upcomingOnly,omitempty"` // только предстоящие и не отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter(now time.Time) (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		EmployeeIDs:  r.EmployeeIDs,
		UpcomingOnly: r.UpcomingOnly,
		Now:          now,
	}

	if r.Category != "" {
		category := domain.FilterCategory(r.Category)
		if err := domain.ValidateCategory(category); err != nil {
			return filter, ErrInvalidCategory
		}
		filter.Category = category
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	PlaceID     int64  `json:"placeId"`
	EmployeeID  *int64 `json:"employeeId,omitempty"`
	BookingDate string `json:"bookingDate"` // "2024-06-12"
	BookingTime string `json:"bookingTime"` // "14:30"
	Status      string `json:"status"`

	// Атрибуты для отображения
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	ServiceName   string `json:"serviceName"`
	TotalPrice    string `json:"totalPrice"` // десятичная строка
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusResponse ответ на смену статуса: пара для внешнего API
type StatusResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		PlaceID:       b.PlaceID,
		EmployeeID:    b.EmployeeID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.StartTime.String(),
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		ServiceName:   b.ServiceName,
		TotalPrice:    b.TotalPrice.StringFixed(2),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if err := domain.ValidateStatus(s); err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
