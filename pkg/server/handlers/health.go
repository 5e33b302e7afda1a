package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/patternrecall"
)

// HealthHandler reports process and snapshot health.
type HealthHandler struct {
	client patternrecall.PatternRecall
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(client patternrecall.PatternRecall) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "patternrecall",
	})
}

// Ready handles GET /ready. The service is ready once a snapshot has
// been loaded.
func (h *HealthHandler) Ready(c *gin.Context) {
	stats := h.client.Stats()
	if !stats.Loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "no snapshot loaded",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"nodes":  stats.Nodes,
		"edges":  stats.Edges,
	})
}

// Live handles GET /live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
