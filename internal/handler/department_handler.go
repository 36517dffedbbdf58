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

// DepartmentHandler handles department CRUD endpoints.
type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// DepartmentRequest is the payload for creating or updating a department.
type DepartmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ListDepartments godoc
// GET /departments
// Lists all departments without pagination.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "", departments)
}

// GetDepartment godoc
// GET /departments/:id
// Returns a single department by ID.
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	department, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	response.OK(c, http.StatusOK, "", department)
}

// CreateDepartment godoc
// POST /departments
// Creates a new department.
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	department := &model.Department{Name: req.Name}
	if err := h.departmentService.Create(c.Request.Context(), department); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Department created successfully", nil)
}

// UpdateDepartment godoc
// PUT /departments/:id
// Updates an existing department. Unknown ids fail before the body is read.
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	department, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	var req DepartmentRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	department.Name = req.Name
	if err := h.departmentService.Update(c.Request.Context(), department); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Department updated successfully", nil)
}

// DeleteDepartment godoc
// DELETE /departments/:id
// Deletes a department. The employees foreign key blocks deletion while
// staff still reference it; that violation surfaces as a 400.
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	department, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), department.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, response.MsgDepartmentInUse)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Department deleted successfully", nil)
}

// resolveDepartment parses the :id param and loads the department, writing
// the failure response itself when either step fails.
func (h *DepartmentHandler) resolveDepartment(c *gin.Context) (*model.Department, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidID)
		return nil, false
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgDepartmentNotFound)
		return nil, false
	}
	return department, true
}
