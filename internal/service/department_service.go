package service

import (
	"context"

	"github.com/talentra/hrm-backend/internal/model"
)

// DepartmentStore persists department records.
type DepartmentStore interface {
	GetByID(ctx context.Context, id int) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Create(ctx context.Context, d *model.Department) error
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id int) error
}

// DepartmentService handles department business logic.
type DepartmentService struct {
	departments DepartmentStore
	reports     *ReportCache
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departments DepartmentStore, reports *ReportCache) *DepartmentService {
	return &DepartmentService{departments: departments, reports: reports}
}

// GetByID retrieves a department by its ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return s.departments.GetByID(ctx, id)
}

// List retrieves all departments.
func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []model.Department{}
	}
	return departments, nil
}

// Create inserts a new department.
func (s *DepartmentService) Create(ctx context.Context, d *model.Department) error {
	if err := s.departments.Create(ctx, d); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// Update modifies an existing department.
func (s *DepartmentService) Update(ctx context.Context, d *model.Department) error {
	if err := s.departments.Update(ctx, d); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// Delete removes a department. The employees foreign key prevents deleting
// a department that still has staff; the handler maps that violation.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}
