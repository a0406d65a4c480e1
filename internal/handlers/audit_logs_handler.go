package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
	"github.com/BruksfildServices01/mapa-clientes/internal/httpresp"
	"github.com/BruksfildServices01/mapa-clientes/internal/models"
	"github.com/BruksfildServices01/mapa-clientes/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLister is satisfied by *audit.Logger.
type AuditLister interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// AuditLogsHandler exposes the data-quality trail: lookups that missed,
// clients without coordinates and import runs.
type AuditLogsHandler struct {
	store AuditLister
	tz    string
}

func NewAuditLogsHandler(store AuditLister, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, tz: tz}
}

// List handles GET /debug/auditoria.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action:     strings.TrimSpace(c.Query("action")),
		Generation: strings.TrimSpace(c.Query("schema")),
		CD:         strings.TrimSpace(c.Query("cd")),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	// whole days in the service timezone; "to" is inclusive
	if from, _, err := timezone.DayBounds(c.Query("from"), h.tz); err == nil {
		f.From = &from
	}
	if _, end, err := timezone.DayBounds(c.Query("to"), h.tz); err == nil {
		f.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		zap.L().Error("audit list failed", zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
