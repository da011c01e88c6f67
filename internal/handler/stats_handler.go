/**
* Name: 			stats_handler.go
* Description: 		Service banner, health check and global statistics
 */
package handler

import (
	"net/http"
	"time"

	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "GreenMason API"
	serviceVersion = "1.0.0"
)

// Root godoc
// @Summary      Service banner
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"tagline": "Fall in Love with a Greener Campus",
		"version": serviceVersion,
		"endpoints": gin.H{
			"classify":    "/api/classify",
			"chat":        "/api/chat",
			"voice":       "/api/voice/tip",
			"leaderboard": "/api/leaderboard",
			"pledges":     "/api/pledges",
			"patriotai":   "/api/patriotai/agents",
			"stats":       "/api/stats",
			"live":        "/ws/leaderboard",
			"docs":        "/swagger/index.html",
		},
	})
}

// Health godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// Stats godoc
// @Summary      Global statistics
// @Tags         Stats
// @Produce      json
// @Success      200 {object} models.GlobalStats
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := storage.GetGlobalStats(c.Request.Context())
	if err != nil {
		h.internalError(c, "Stats failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
