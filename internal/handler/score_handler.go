/**
* Name: 			score_handler.go
* Description: 		Score events and the campus leaderboard
 */
package handler

import (
	"net/http"
	"strings"

	"greenmason/internal/feed"
	"greenmason/internal/models"
	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogScore godoc
// @Summary      Log a scoring action
// @Description  Adds points for sort, challenge, quiz, pledge or chat. Unknown users are created.
// @Tags         Score
// @Accept       json
// @Produce      json
// @Param        request body models.ScoreAction true "score event"
// @Success      200 {object} models.ScoreResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/scores [post]
func (h *Handler) LogScore(c *gin.Context) {
	var req models.ScoreAction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Action = strings.TrimSpace(req.Action)
	if req.Username == "" || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and action are required"})
		return
	}
	if req.Points < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Points cannot be negative"})
		return
	}

	result, err := storage.LogAction(c.Request.Context(), req.Username, req.Action, req.Points, req.Description)
	if err != nil {
		h.internalError(c, "Score logging failed", err)
		return
	}
	h.logger.Info("LogScore(): action logged",
		zap.String("username", result.Username),
		zap.String("action", result.Action),
		zap.Int("points", result.PointsAdded),
		zap.Int("total", result.NewTotal))

	h.publishLeaderboard(c)
	c.JSON(http.StatusOK, result)
}

// Leaderboard godoc
// @Summary      Campus leaderboard
// @Description  Users with a positive Green Score, best first.
// @Tags         Score
// @Produce      json
// @Param        limit query int false "maximum number of entries (default 20)"
// @Success      200 {object} models.LeaderboardResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	limit, ok := queryLimit(c, defaultLeaderboardLimit)
	if !ok {
		return
	}
	board, err := leaderboard(c, limit)
	if err != nil {
		h.internalError(c, "Leaderboard failed", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func leaderboard(c *gin.Context, limit int) (models.LeaderboardResponse, error) {
	entries, err := storage.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		return models.LeaderboardResponse{}, err
	}
	return models.LeaderboardResponse{Leaderboard: entries, TotalEntries: len(entries)}, nil
}

// publishLeaderboard pushes the current top entries to live feed subscribers.
func (h *Handler) publishLeaderboard(c *gin.Context) {
	if h.feed == nil {
		return
	}
	board, err := leaderboard(c, feedLeaderboardSize)
	if err != nil {
		h.logger.Warn("publishLeaderboard(): could not load leaderboard", zap.Error(err))
		return
	}
	h.feed.Publish(feed.EventLeaderboard, board)
}
