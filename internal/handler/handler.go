/**
* Name: 			handler.go
* Description: 		Gin handlers for the GreenMason API and their dependencies
* Workflow: 		New(assistant, opts...) -> Register(router)
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"greenmason/internal/feed"
	"greenmason/internal/llm"
	"greenmason/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultLeaderboardLimit = 20
	defaultPledgesLimit     = 50
	defaultActionsLimit     = 50
	maxListLimit            = 200
	feedLeaderboardSize     = 10

	// Uploaded photos and recordings are read fully into memory.
	maxUploadBytes = 10 << 20
)

var errServiceUnavailable = errors.New("service not configured")

// Assistant is the generative model behind sorting, chat and tips.
type Assistant interface {
	ClassifyWaste(ctx context.Context, image []byte, mimeType string) (*models.ClassificationResult, error)
	EcoChat(ctx context.Context, message string, history []models.ChatMessage) (*models.ChatResponse, error)
	DailyTip(ctx context.Context) (string, error)
}

type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// Handler serves the API. Speaker, transcriber and feed are optional; the
// endpoints that need a missing one answer 503.
type Handler struct {
	assistant   Assistant
	speaker     Speaker
	transcriber Transcriber
	feed        *feed.Hub
	logger      *zap.Logger
}

type Option func(*Handler)

func WithSpeaker(s Speaker) Option {
	return func(h *Handler) { h.speaker = s }
}

func WithTranscriber(t Transcriber) Option {
	return func(h *Handler) { h.transcriber = t }
}

func WithFeed(hub *feed.Hub) Option {
	return func(h *Handler) { h.feed = hub }
}

func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

func New(assistant Assistant, opts ...Option) *Handler {
	h := &Handler{assistant: assistant, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users/:username", h.GetUser)
		api.GET("/users/:username/actions", h.GetUserActions)

		api.POST("/scores", h.LogScore)
		api.GET("/leaderboard", h.Leaderboard)

		api.POST("/pledges", h.CreatePledge)
		api.GET("/pledges", h.GetPledges)
		api.POST("/pledges/:id/like", h.LikePledge)

		api.POST("/classify", h.Classify)
		api.POST("/classify/upload", h.ClassifyUpload)

		api.POST("/chat", h.Chat)
		api.POST("/chat/voice", h.VoiceChat)

		api.GET("/patriotai/agents", h.PatriotAIAgents)
		api.POST("/patriotai/route", h.PatriotAIRoute)

		api.POST("/voice/speak", h.Speak)
		api.GET("/voice/tip", h.VoiceTip)
		api.GET("/voice/tip/text", h.VoiceTipText)
		api.GET("/voice/score/:username", h.VoiceScore)

		api.GET("/stats", h.Stats)
	}

	r.GET("/ws/leaderboard", h.LeaderboardFeed)
}

// queryLimit reads ?limit=, applying def when absent. ok is false after a 400
// has been written.
func queryLimit(c *gin.Context, def int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, true
}

// aiError answers a failed model or speech call.
func (h *Handler) aiError(c *gin.Context, what string, err error) {
	if errors.Is(err, llm.ErrMissingAPIKey) || errors.Is(err, errServiceUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": what + " is not available: " + err.Error()})
		return
	}
	h.logger.Error("aiError(): "+what+" failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": what + " failed: " + err.Error()})
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error("internalError(): "+msg, zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
