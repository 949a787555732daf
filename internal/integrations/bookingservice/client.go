package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Client клиент для работы с BookingService (внешний API бронирований)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListBookings получает снимок списка бронирований точки за период.
// from/to опциональны: nil означает отсутствие ограничения с соответствующей стороны.
func (c *Client) ListBookings(ctx context.Context, placeID int64, from, to *time.Time) ([]*domain.Booking, error) {
	url := fmt.Sprintf("%s/internal/places/%d/bookings", c.baseURL, placeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Период передаем query параметрами
	q := req.URL.Query()
	if from != nil {
		q.Set("from", from.Format(domain.DateFormat))
	}
	if to != nil {
		q.Set("to", to.Format(domain.DateFormat))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPlaceNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload BookingListDTO
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Конвертируем DTO в domain модели с валидацией на границе:
	// некорректный статус или время - это ошибка данных, а не повод для дефолта
	bookings := make([]*domain.Booking, 0, len(payload.Bookings))
	for i := range payload.Bookings {
		booking, err := payload.Bookings[i].ToDomain()
		if err != nil {
			c.log.Error("ListBookings: rejected booking id=%d from upstream: %v", payload.Bookings[i].ID, err)
			return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidResponse, payload.Bookings[i].ID, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetBooking получает одно бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/internal/bookings/%d", c.baseURL, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dto BookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	booking, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidResponse, dto.ID, err)
	}

	return booking, nil
}

// UpdateStatus отправляет новый статус бронирования во внешний API.
// Валидация перехода выполняется до вызова, клиент только доставляет значение.
func (c *Client) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	url := fmt.Sprintf("%s/internal/bookings/%d/status", c.baseURL, bookingID)

	body, err := json.Marshal(UpdateStatusDTO{Status: string(status)})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	case http.StatusConflict:
		return ErrStatusConflict
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
