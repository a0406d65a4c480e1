package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mapa-clientes/internal/db"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/httpresp"
	"github.com/BruksfildServices01/mapa-clientes/internal/timezone"
)

const serviceName = "mapa-clientes"

// StoreProbe reports store readiness. *db.Probe satisfies it.
type StoreProbe interface {
	Status(ctx context.Context) db.Status
}

type HealthHandler struct {
	probe StoreProbe
	tz    string
}

func NewHealthHandler(probe StoreProbe, tz string) *HealthHandler {
	return &HealthHandler{probe: probe, tz: tz}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": serviceName,
		"time":    timezone.Stamp(h.tz),
	})
}

// Store handles GET /debug/store.
func (h *HealthHandler) Store(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	st := h.probe.Status(ctx)
	c.JSON(http.StatusOK, gin.H{
		"ok":    st.Ready,
		"store": st,
	})
}

// ListCDs handles GET /api/cds.
func (h *HealthHandler) ListCDs(c *gin.Context) {
	httpresp.Data(c, domain.DistributionCenters)
}
