package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Client клиент для работы со StaffService (справочник сотрудников)
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

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListEmployees получает справочник сотрудников точки обслуживания
func (c *Client) ListEmployees(ctx context.Context, placeID int64) (domain.EmployeeDirectory, error) {
	url := fmt.Sprintf("%s/internal/places/%d/employees", c.baseURL, placeID)

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
		return nil, ErrPlaceNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload EmployeeListDTO
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	directory := make(domain.EmployeeDirectory, len(payload.Employees))
	for _, e := range payload.Employees {
		directory[e.ID] = e.ToDomain()
	}

	return directory, nil
}

// ListEmployeesWithGracefulDegradation получает справочник сотрудников с graceful degradation.
// При недоступности StaffService возвращает ErrServiceDegraded: вызывающий код
// переключается на статусные цвета маркеров вместо цветов сотрудников.
func (c *Client) ListEmployeesWithGracefulDegradation(ctx context.Context, placeID int64) (domain.EmployeeDirectory, error) {
	c.log.Info("Fetching employees for place_id=%d", placeID)

	directory, err := c.ListEmployees(ctx, placeID)
	if err != nil {
		// Отсутствие точки - критичная бизнес-ошибка, пробрасываем её дальше
		if err == ErrPlaceNotFound {
			c.log.Info("No place found for place_id=%d", placeID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("StaffService unavailable, applying graceful degradation for place_id=%d: %v", placeID, err)
		return nil, fmt.Errorf("%w: place_id=%d, error=%v", ErrServiceDegraded, placeID, err)
	}

	c.log.Info("Successfully fetched %d employees for place_id=%d", len(directory), placeID)
	return directory, nil
}
