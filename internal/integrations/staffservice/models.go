package staffservice

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// EmployeeDTO модель сотрудника из StaffService
type EmployeeDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"` // назначенный hex-цвет, может быть пустым
	PhotoURL string `json:"photo_url"`
}

// EmployeeListDTO список сотрудников из StaffService
type EmployeeListDTO struct {
	Employees []EmployeeDTO `json:"employees"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует DTO в domain модель
func (d EmployeeDTO) ToDomain() domain.Employee {
	return domain.Employee{
		ID:       d.ID,
		Name:     d.Name,
		Color:    d.Color,
		PhotoURL: d.PhotoURL,
	}
}
