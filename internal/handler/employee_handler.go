package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/response"
	"github.com/talentra/hrm-backend/internal/service"
	"github.com/talentra/hrm-backend/internal/validator"
)

// EmployeeHandler handles employee CRUD and reporting endpoints.
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest is the payload for creating or updating an employee.
// department_id is validated for presence and type only; whether the
// department exists is left to the foreign key.
type EmployeeRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email,max=80"`
	Phone        string `json:"phone" binding:"required,max=15"`
	DepartmentID int    `json:"department_id" binding:"required"`
}

// ListEmployees godoc
// GET /employees
// Lists employees joined with their department name, 10 per page.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	employees, pagination, err := h.employeeService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OKWithPagination(c, http.StatusOK, employees, pagination)
}

// AllEmployees godoc
// GET /employeesall
// Returns the entire employee set with department names, unpaginated.
func (h *EmployeeHandler) AllEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "", employees)
}

// EmployeesByDepartment godoc
// GET /employeesbydepartment
// Returns the per-department headcount, including zero-count departments.
func (h *EmployeeHandler) EmployeesByDepartment(c *gin.Context) {
	report, err := h.employeeService.CountByDepartment(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "", report)
}

// GetEmployee godoc
// GET /employees/:id
// Returns a single employee by ID.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, ok := h.resolveEmployee(c)
	if !ok {
		return
	}

	response.OK(c, http.StatusOK, "", employee)
}

// CreateEmployee godoc
// POST /employees
// Creates a new employee. An unknown department_id is rejected by the
// foreign key, not by validation.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	employee := &model.Employee{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
	}

	if err := h.employeeService.Create(c.Request.Context(), employee); err != nil {
		h.failStorage(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Employee created successfully", nil)
}

// UpdateEmployee godoc
// PUT /employees/:id
// Updates an existing employee. Unknown ids fail before the body is read.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employee, ok := h.resolveEmployee(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Phone = req.Phone
	employee.DepartmentID = req.DepartmentID

	if err := h.employeeService.Update(c.Request.Context(), employee); err != nil {
		h.failStorage(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Employee updated successfully", nil)
}

// DeleteEmployee godoc
// DELETE /employees/:id
// Deletes an employee by ID.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employee, ok := h.resolveEmployee(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), employee.ID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Employee deleted successfully", nil)
}

// resolveEmployee parses the :id param and loads the employee, writing the
// failure response itself when either step fails.
func (h *EmployeeHandler) resolveEmployee(c *gin.Context) (*model.Employee, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidID)
		return nil, false
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgEmployeeNotFound)
		return nil, false
	}
	return employee, true
}

// failStorage maps write errors: foreign key violations surface as a
// storage constraint failure, everything else is internal.
func (h *EmployeeHandler) failStorage(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		response.Fail(c, http.StatusBadRequest, response.MsgConstraintViolated)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
}
