package handler

import (
	"net/http"

	"github.com/crediario/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db      *persistence.Database
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Live handles GET /health. It answers as long as the process is up.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready handles GET /health/ready. It fails when the database is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
