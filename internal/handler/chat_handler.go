/**
* Name: 			chat_handler.go
* Description: 		EcoChat turns, typed or spoken
* Workflow: 		(speech -> transcript) -> Gemini reply -> PatriotAI routing merge
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"greenmason/internal/llm"
	"greenmason/internal/models"
	"greenmason/internal/patriotai"

	"github.com/gin-gonic/gin"
)

// Chat godoc
// @Summary      EcoChat turn
// @Description  Answers a sustainability question. Campus questions outside sustainability are routed to a PatriotAI agent.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body models.ChatRequest true "message and prior turns"
// @Success      200 {object} models.ChatResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	resp, err := h.chat(c, req.Message, req.History)
	if err != nil {
		h.aiError(c, "Chat", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VoiceChat godoc
// @Summary      Spoken EcoChat turn
// @Description  Transcribes a LINEAR16 16 kHz mono recording and answers it like /api/chat.
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio formData file true "recorded question"
// @Success      200 {object} models.VoiceChatResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      422 {object} handler.ErrorResponse "no speech recognized"
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/chat/voice [post]
func (h *Handler) VoiceChat(c *gin.Context) {
	if h.transcriber == nil {
		h.aiError(c, "Speech recognition", errServiceUnavailable)
		return
	}
	audio, _, ok := readUpload(c, "audio")
	if !ok {
		return
	}

	transcript, err := h.transcriber.Transcribe(c.Request.Context(), audio)
	if err != nil {
		if errors.Is(err, llm.ErrNoSpeech) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No speech recognized, try again"})
			return
		}
		h.aiError(c, "Speech recognition", err)
		return
	}

	resp, err := h.chat(c, transcript, nil)
	if err != nil {
		h.aiError(c, "Chat", err)
		return
	}
	c.JSON(http.StatusOK, models.VoiceChatResponse{Transcript: transcript, ChatResponse: *resp})
}

// chat asks the model and falls back to keyword routing when the model did
// not route on its own.
func (h *Handler) chat(c *gin.Context, message string, history []models.ChatMessage) (*models.ChatResponse, error) {
	resp, err := h.assistant.EcoChat(c.Request.Context(), message, history)
	if err != nil {
		return nil, err
	}
	if !resp.RouteToPatriotAI {
		if route := patriotai.DetectRoute(message); route != nil {
			key := route.AgentKey
			reason := route.Reason()
			resp.RouteToPatriotAI = true
			resp.PatriotAIAgent = &key
			resp.PatriotAIReason = &reason
		}
	}
	return resp, nil
}
