package domain

// Employee is a weak reference target: the engine only ever holds employee
// ids and resolves them through a caller-supplied directory. Employee data
// is owned by the staff service, never by this core.
type Employee struct {
	ID       int64
	Name     string
	Color    string // assigned hex color, may be empty
	PhotoURL string
}

// EmployeeDirectory maps employee id to employee data.
// Treated as read-only everywhere in this service.
type EmployeeDirectory map[int64]Employee
