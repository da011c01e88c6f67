/**
* Name: 			pledge_handler.go
* Description: 		Love Pledges to Earth wall
 */
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"greenmason/internal/models"
	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatePledge godoc
// @Summary      Create a Love Pledge
// @Description  Posts a pledge to the wall and awards the author 20 points.
// @Tags         Pledge
// @Accept       json
// @Produce      json
// @Param        request body models.PledgeCreate true "pledge, at most 280 characters"
// @Success      200 {object} models.Pledge
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/pledges [post]
func (h *Handler) CreatePledge(c *gin.Context) {
	var req models.PledgeCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	username := strings.TrimSpace(req.Username)
	text := strings.TrimSpace(req.PledgeText)
	if username == "" || text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and pledge text are required"})
		return
	}

	pledge, err := storage.CreatePledge(c.Request.Context(), username, text)
	switch {
	case errors.Is(err, storage.ErrPledgeTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Pledge must be at most %d characters", models.MaxPledgeLength)})
		return
	case err != nil && pledge.ID == "":
		h.internalError(c, "Pledge creation failed", err)
		return
	case err != nil:
		// Stored, but the points were not awarded.
		h.logger.Warn("CreatePledge(): pledge saved without points", zap.String("id", pledge.ID), zap.Error(err))
	}

	h.publishLeaderboard(c)
	c.JSON(http.StatusOK, pledge)
}

// GetPledges godoc
// @Summary      List pledges
// @Description  Returns the newest pledges first.
// @Tags         Pledge
// @Produce      json
// @Param        limit query int false "maximum number of pledges (default 50)"
// @Success      200 {object} models.PledgesResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/pledges [get]
func (h *Handler) GetPledges(c *gin.Context) {
	limit, ok := queryLimit(c, defaultPledgesLimit)
	if !ok {
		return
	}
	pledges, err := storage.GetPledges(c.Request.Context(), limit)
	if err != nil {
		h.internalError(c, "Pledge retrieval failed", err)
		return
	}
	c.JSON(http.StatusOK, models.PledgesResponse{Pledges: pledges, Total: len(pledges)})
}

// LikePledge godoc
// @Summary      Like a pledge
// @Tags         Pledge
// @Produce      json
// @Param        id path string true "pledge id"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/pledges/{id}/like [post]
func (h *Handler) LikePledge(c *gin.Context) {
	if err := storage.LikePledge(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrPledgeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
			return
		}
		h.internalError(c, "Failed to like pledge", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": true})
}
