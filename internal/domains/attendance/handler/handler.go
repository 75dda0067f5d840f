package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/domains/attendance/service"
	"hrms-backend/internal/shared/apperrors"
	"hrms-backend/internal/shared/response"
)

const invalidStatusMessage = "Status must be one of: Present, Absent."

// Handler exposes the attendance endpoints.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /attendance/ with employee_id, date and month filters.
func (h *Handler) List(c *gin.Context) {
	filter := model.ListFilter{
		EmployeeID: c.Query("employee_id"),
		Date:       c.Query("date"),
		Month:      c.Query("month"),
	}

	records, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.ListWithTotal(c, records, len(records))
}

// Mark handles POST /attendance/
func (h *Handler) Mark(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	rec, err := h.svc.Mark(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusCreated, rec, "Attendance marked successfully.")
}

// Update handles PUT /attendance/:id/:date/
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, invalidStatusMessage)
		return
	}

	status := strings.TrimSpace(req.Status)
	if !model.IsValidStatus(status) {
		response.BadRequest(c, invalidStatusMessage)
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.Param("date"), status)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, rec, "Attendance updated.")
}

// Delete handles DELETE /attendance/:id/:date/
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Attendance record deleted.")
}

// Summary handles GET /attendance/summary/:id/
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, summary)
}

// BulkMark handles POST /attendance/bulk/. The batch is rejected whole only
// for a missing record list or a bad date; per-entry failures land in the
// result's errors list.
func (h *Handler) BulkMark(c *gin.Context) {
	var req model.BulkMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	if len(req.Records) == 0 {
		response.BadRequest(c, "No records provided.")
		return
	}

	req.Date = strings.TrimSpace(req.Date)
	if !model.IsValidDate(req.Date) {
		response.BadRequest(c, "Valid date is required (YYYY-MM-DD).")
		return
	}

	result, err := h.svc.BulkMark(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, result)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if fields, ok := apperrors.FieldErrors(err); ok {
		response.ValidationFailed(c, fields)
		return
	}
	status, message := apperrors.Translate(err)
	response.Error(c, status, message)
}
