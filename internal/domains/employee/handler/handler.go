package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/domains/employee/service"
	"hrms-backend/internal/shared/apperrors"
	"hrms-backend/internal/shared/response"
)

// Handler exposes the employee endpoints.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /employees/
func (h *Handler) List(c *gin.Context) {
	filter := model.ListFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: strings.TrimSpace(c.Query("department")),
	}

	employees, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.List(c, employees, total, len(employees))
}

// Create handles POST /employees/
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	emp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusCreated, emp, "Employee created successfully.")
}

// Get handles GET /employees/:id/
func (h *Handler) Get(c *gin.Context) {
	emp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, emp)
}

// Delete handles DELETE /employees/:id/ and cascades to attendance.
func (h *Handler) Delete(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))

	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK,
		fmt.Sprintf("Employee '%s' and %d attendance record(s) deleted.", id, removed))
}

// Departments handles GET /departments/
func (h *Handler) Departments(c *gin.Context) {
	response.OK(c, http.StatusOK, model.Departments)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if fields, ok := apperrors.FieldErrors(err); ok {
		response.ValidationFailed(c, fields)
		return
	}
	status, message := apperrors.Translate(err)
	response.Error(c, status, message)
}
