package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/audit"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
	"github.com/eztechpal/eztech-portal/internal/models"
)

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// GetLogs lists audit records newest first, optionally filtered by action
// and entity, paginated with page and limit query params.
func (h *AuditLogsHandler) GetLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	all, err := h.logs.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_audit_logs", "Could not load the audit trail.")
		return
	}

	// Write order is oldest first; walk backwards for newest first.
	filtered := make([]models.AuditLog, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if action != "" && all[i].Action != action {
			continue
		}
		if entity != "" && all[i].Entity != entity {
			continue
		}
		filtered = append(filtered, all[i])
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	httpresp.OK(c, gin.H{
		"data":  filtered[start:end],
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
