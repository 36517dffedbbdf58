package model

import "time"

// Employee represents a staff member assigned to a department.
// Email is format-checked but intentionally not unique.
type Employee struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DepartmentID int       `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeeWithDepartment is an employee row joined with its department name,
// as returned by the listing endpoints.
type EmployeeWithDepartment struct {
	Employee
	Department string `json:"department"`
}

// DepartmentHeadcount is one row of the employees-by-department report.
// Departments without employees appear with a zero count.
type DepartmentHeadcount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}
