package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talentra/hrm-backend/internal/model"
)

// EmployeeRepository handles employee data access.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// GetByID retrieves an employee by ID.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*model.Employee, error) {
	e := &model.Employee{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, department_id, created_at, updated_at
		 FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListPaginated retrieves employees joined with their department name,
// id-ascending, with a total count.
func (r *EmployeeRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.EmployeeWithDepartment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees e JOIN departments d ON d.id = e.department_id`,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.name, e.email, e.phone, e.department_id, e.created_at, e.updated_at, d.name
		 FROM employees e
		 JOIN departments d ON d.id = e.department_id
		 ORDER BY e.id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []model.EmployeeWithDepartment
	for rows.Next() {
		var e model.EmployeeWithDepartment
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.DepartmentID,
			&e.CreatedAt, &e.UpdatedAt, &e.Department); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

// ListAll retrieves every employee joined with its department name.
func (r *EmployeeRepository) ListAll(ctx context.Context) ([]model.EmployeeWithDepartment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.name, e.email, e.phone, e.department_id, e.created_at, e.updated_at, d.name
		 FROM employees e
		 JOIN departments d ON d.id = e.department_id
		 ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.EmployeeWithDepartment
	for rows.Next() {
		var e model.EmployeeWithDepartment
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.DepartmentID,
			&e.CreatedAt, &e.UpdatedAt, &e.Department); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// CountByDepartment returns the employee headcount per department. The join
// is anchored on departments so units without employees report a zero count.
// Ordered by department name for deterministic output.
func (r *EmployeeRepository) CountByDepartment(ctx context.Context) ([]model.DepartmentHeadcount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT d.name, COUNT(e.id)
		 FROM employees e
		 RIGHT JOIN departments d ON d.id = e.department_id
		 GROUP BY d.name
		 ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []model.DepartmentHeadcount
	for rows.Next() {
		var h model.DepartmentHeadcount
		if err := rows.Scan(&h.Department, &h.Count); err != nil {
			return nil, err
		}
		report = append(report, h)
	}
	return report, rows.Err()
}

// Create inserts a new employee. An unknown department_id surfaces as a
// foreign key violation from the database, not as a validation error.
func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO employees (name, email, phone, department_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		e.Name, e.Email, e.Phone, e.DepartmentID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update modifies an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE employees
		 SET name = $1, email = $2, phone = $3, department_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		e.Name, e.Email, e.Phone, e.DepartmentID, e.ID,
	)
	return err
}

// Delete removes an employee by ID.
func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}
