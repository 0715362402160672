package handlers

import (
	"net/http"

	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// logHandler handles HTTP requests for the audit log.
type logHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newLogHandler(as portssvc.AuditSvcFacade) *logHandler {
	return &logHandler{auditService: as}
}

// registerLogRoutes registers audit log routes, admin-only.
func registerLogRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newLogHandler(auditService)

	logs := rg.Group("/logs", middleware.RequireAdmin())
	{
		logs.GET("", h.listLogs)
	}
}

// listLogs godoc
// @Summary List audit log entries
// @Description Retrieves the full audit trail in chronological order (oldest first). Admin only.
// @Tags logs
// @Produce json
// @Success 200 {object} dto.ListLogsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /logs [get]
func (h *logHandler) listLogs(c *gin.Context) {
	logs, err := h.auditService.ListLogs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLogsResponse(logs))
}
