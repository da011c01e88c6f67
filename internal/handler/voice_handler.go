/**
* Name: 			voice_handler.go
* Description: 		Text-to-speech endpoints: free text, daily tip, score summary
 */
package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"greenmason/internal/llm"
	"greenmason/internal/models"
	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
)

// X-Tip-Text carries at most this many characters of the tip.
const tipHeaderChars = 200

// Speak godoc
// @Summary      Text to speech
// @Description  Speaks up to 500 characters of text.
// @Tags         Voice
// @Accept       json
// @Produce      audio/mpeg
// @Param        request body models.VoiceRequest true "text to speak"
// @Success      200 {file} file "MP3 audio"
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/voice/speak [post]
func (h *Handler) Speak(c *gin.Context) {
	var req models.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}
	h.speak(c, req.Text, "greenmason_voice.mp3")
}

// VoiceTip godoc
// @Summary      Daily tip (audio)
// @Description  Generates a sustainability tip and speaks it. The URL-encoded tip text is in X-Tip-Text.
// @Tags         Voice
// @Produce      audio/mpeg
// @Success      200 {file} file "MP3 audio"
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/voice/tip [get]
func (h *Handler) VoiceTip(c *gin.Context) {
	if h.speaker == nil {
		h.aiError(c, "Voice", errServiceUnavailable)
		return
	}
	tip, err := h.assistant.DailyTip(c.Request.Context())
	if err != nil {
		h.aiError(c, "Daily tip", err)
		return
	}
	header := []rune(strings.ReplaceAll(tip, "\n", " "))
	if len(header) > tipHeaderChars {
		header = header[:tipHeaderChars]
	}
	c.Header("X-Tip-Text", url.QueryEscape(string(header)))
	h.speak(c, tip, "daily_tip.mp3")
}

// VoiceTipText godoc
// @Summary      Daily tip (text)
// @Tags         Voice
// @Produce      json
// @Success      200 {object} models.TipResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/voice/tip/text [get]
func (h *Handler) VoiceTipText(c *gin.Context) {
	tip, err := h.assistant.DailyTip(c.Request.Context())
	if err != nil {
		h.aiError(c, "Tip generation", err)
		return
	}
	c.JSON(http.StatusOK, models.TipResponse{Tip: tip})
}

// VoiceScore godoc
// @Summary      Spoken score summary
// @Tags         Voice
// @Produce      audio/mpeg
// @Param        username path string true "normalized username"
// @Success      200 {file} file "MP3 audio"
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/voice/score/{username} [get]
func (h *Handler) VoiceScore(c *gin.Context) {
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
	h.speak(c, llm.ScoreSummaryText(user.DisplayName, user.TotalScore, rank), "score_summary.mp3")
}

func (h *Handler) speak(c *gin.Context, text, filename string) {
	if h.speaker == nil {
		h.aiError(c, "Voice", errServiceUnavailable)
		return
	}
	audio, err := h.speaker.Synthesize(c.Request.Context(), text)
	if err != nil {
		h.aiError(c, "Voice generation", err)
		return
	}
	c.Header("Content-Disposition", "inline; filename="+filename)
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
