/**
* Name: 			user_handler.go
* Description: 		Green Score identities
* Workflow: 		register (or return existing), profile with rank, action history
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"greenmason/internal/models"
	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateUser godoc
// @Summary      Register a user
// @Description  Creates a Green Score identity. An existing username is returned unchanged.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body models.UserCreate true "username and display name"
// @Success      200 {object} models.User
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
		return
	}

	ctx := c.Request.Context()
	user, err := storage.CreateUser(ctx, username, strings.TrimSpace(req.DisplayName))
	if errors.Is(err, storage.ErrUsernameExists) {
		user, err = storage.GetUserByUsername(ctx, username)
	}
	if err != nil {
		h.internalError(c, "User creation failed", err)
		return
	}
	h.logger.Info("CreateUser(): user ready", zap.String("username", user.Username))
	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary      Get a user profile
// @Description  Returns the user's score, action count and leaderboard rank.
// @Tags         User
// @Produce      json
// @Param        username path string true "normalized username"
// @Success      200 {object} models.User
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/users/{username} [get]
func (h *Handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	user, err := storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "Failed to get user", err)
		return
	}
	rank, err := storage.GetUserRank(ctx, username)
	if err != nil {
		h.internalError(c, "Failed to get user rank", err)
		return
	}
	user.Rank = &rank
	c.JSON(http.StatusOK, user)
}

// GetUserActions godoc
// @Summary      Get a user's score history
// @Description  Lists the user's logged actions, newest first.
// @Tags         User
// @Produce      json
// @Param        username path  string true  "normalized username"
// @Param        limit    query int    false "maximum number of actions (default 50)"
// @Success      200 {object} models.ActionsResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/users/{username}/actions [get]
func (h *Handler) GetUserActions(c *gin.Context) {
	limit, ok := queryLimit(c, defaultActionsLimit)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	username := c.Param("username")

	if _, err := storage.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "Failed to get user", err)
		return
	}

	actions, err := storage.GetActionsByUsername(ctx, username, limit)
	if err != nil {
		h.internalError(c, "Failed to fetch actions", err)
		return
	}
	c.JSON(http.StatusOK, models.ActionsResponse{Actions: actions, Total: len(actions)})
}
