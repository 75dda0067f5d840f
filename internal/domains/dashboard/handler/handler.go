package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/dashboard/service"
	"hrms-backend/internal/shared/apperrors"
	"hrms-backend/internal/shared/response"
)

// Handler exposes the dashboard endpoint.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// Stats handles GET /dashboard/
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		status, message := apperrors.Translate(err)
		response.Error(c, status, message)
		return
	}

	response.OK(c, http.StatusOK, stats)
}
