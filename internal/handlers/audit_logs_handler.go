package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List is admin-only; the route group enforces the role.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
			return
		}
		f.UserID = &id
	}

	// Malformed dates are ignored rather than rejected.
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}

	f = f.Normalize()
	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
