/**
* Name: 			patriotai_handler.go
* Description: 		PatriotAI agent directory and routing queries
 */
package handler

import (
	"net/http"
	"strings"

	"greenmason/internal/patriotai"

	"github.com/gin-gonic/gin"
)

// PatriotAIAgents godoc
// @Summary      PatriotAI agents
// @Tags         PatriotAI
// @Produce      json
// @Success      200 {object} patriotai.Directory
// @Router       /api/patriotai/agents [get]
func (h *Handler) PatriotAIAgents(c *gin.Context) {
	c.JSON(http.StatusOK, patriotai.ListDirectory())
}

// PatriotAIRoute godoc
// @Summary      Check PatriotAI routing
// @Description  Tells whether a message is better answered by a PatriotAI agent.
// @Tags         PatriotAI
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        message formData string true "user message"
// @Success      200 {object} patriotai.Decision
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/patriotai/route [post]
func (h *Handler) PatriotAIRoute(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	c.JSON(http.StatusOK, patriotai.Decide(message))
}
