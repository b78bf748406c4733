package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habittrack/habittrack/internal/store"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Healthz pings the database and reports status.
func (h *HealthHandler) Healthz(c *gin.Context) {
	if errPing := h.store.Ping(c.Request.Context()); errPing != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
