package handler

import (
	"greenmason/internal/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeaderboardFeed godoc
// @Summary      Live leaderboard
// @Description  WebSocket stream of the top 10 leaderboard. The current board is sent on connect
// @Description  and again after every score event, as {"type": "leaderboard", "data": {...}}.
// @Description  <br>
// @Description  **Not a regular HTTP API:** connect with the `ws://` or `wss://` scheme.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      503 {object} handler.ErrorResponse "live feed disabled"
// @Router       /ws/leaderboard [get]
func (h *Handler) LeaderboardFeed(c *gin.Context) {
	if h.feed == nil {
		h.aiError(c, "Live feed", errServiceUnavailable)
		return
	}

	var initial *feed.Event
	if board, err := leaderboard(c, feedLeaderboardSize); err == nil {
		initial = &feed.Event{Type: feed.EventLeaderboard, Data: board}
	} else {
		h.logger.Warn("LeaderboardFeed(): could not load initial leaderboard", zap.Error(err))
	}

	if err := h.feed.ServeWS(c.Writer, c.Request, initial); err != nil {
		h.logger.Warn("LeaderboardFeed(): websocket upgrade failed", zap.Error(err))
		return
	}
	h.logger.Debug("LeaderboardFeed(): client connected", zap.String("client", c.ClientIP()))
}
