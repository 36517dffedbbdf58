package service

import (
	"context"

	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/response"
)

// EmployeeStore persists employee records and answers the directory queries.
type EmployeeStore interface {
	GetByID(ctx context.Context, id int) (*model.Employee, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]model.EmployeeWithDepartment, int, error)
	ListAll(ctx context.Context) ([]model.EmployeeWithDepartment, error)
	CountByDepartment(ctx context.Context) ([]model.DepartmentHeadcount, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id int) error
}

// EmployeeService handles employee business logic.
type EmployeeService struct {
	employees EmployeeStore
	reports   *ReportCache
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employees EmployeeStore, reports *ReportCache) *EmployeeService {
	return &EmployeeService{employees: employees, reports: reports}
}

// GetByID retrieves an employee by ID.
func (s *EmployeeService) GetByID(ctx context.Context, id int) (*model.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// List retrieves employees joined with their department name, paginated.
func (s *EmployeeService) List(ctx context.Context, page, perPage int) ([]model.EmployeeWithDepartment, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	employees, total, err := s.employees.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}

	if employees == nil {
		employees = []model.EmployeeWithDepartment{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	return employees, pagination, nil
}

// ListAll retrieves every employee joined with its department name.
func (s *EmployeeService) ListAll(ctx context.Context) ([]model.EmployeeWithDepartment, error) {
	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []model.EmployeeWithDepartment{}
	}
	return employees, nil
}

// CountByDepartment returns the per-department headcount report, including
// zero-count departments, served from the cache when warm.
func (s *EmployeeService) CountByDepartment(ctx context.Context) ([]model.DepartmentHeadcount, error) {
	if report, ok := s.reports.Get(ctx); ok {
		return report, nil
	}

	report, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	if report == nil {
		report = []model.DepartmentHeadcount{}
	}

	s.reports.Set(ctx, report)
	return report, nil
}

// Create inserts a new employee. department_id is deliberately not checked
// against the departments table here; the foreign key rejects unknown ids.
func (s *EmployeeService) Create(ctx context.Context, e *model.Employee) error {
	if err := s.employees.Create(ctx, e); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// Update modifies an existing employee.
func (s *EmployeeService) Update(ctx context.Context, e *model.Employee) error {
	if err := s.employees.Update(ctx, e); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// Delete removes an employee by ID.
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}
