/**
* Name: 			client.go
* Description: 		Gemini calls for waste sorting, EcoChat and the daily tip
 */

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"greenmason/internal/models"
	"greenmason/internal/patriotai"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.0-flash-001"

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is empty")

// Client talks to Gemini. A genai client is opened per call.
type Client struct {
	apiKey string
	model  string
	logger *zap.Logger
}

func NewClient(apiKey, model string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
		logger: logger,
	}
}

func (c *Client) open(ctx context.Context) (*genai.Client, *genai.GenerativeModel, error) {
	if c.apiKey == "" {
		return nil, nil, ErrMissingAPIKey
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, nil, err
	}
	m := cl.GenerativeModel(c.model)
	if m == nil {
		cl.Close()
		return nil, nil, fmt.Errorf("gemini: model %q is nil", c.model)
	}
	return cl, m, nil
}

// ClassifyWaste asks the vision model to sort the pictured item.
func (c *Client) ClassifyWaste(ctx context.Context, image []byte, mimeType string) (*models.ClassificationResult, error) {
	cl, m, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	m.SetTemperature(0.3)
	m.SetMaxOutputTokens(500)

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	resp, err := m.GenerateContent(ctx,
		genai.Text(classificationPrompt),
		&genai.Blob{MIMEType: mimeType, Data: image},
	)
	if err != nil {
		c.logger.Error("ClassifyWaste(): GenerateContent failed", zap.Error(err))
		return nil, err
	}

	result := ParseClassification(firstText(resp))
	c.logger.Info("ClassifyWaste(): classified",
		zap.String("item", result.ItemName),
		zap.String("category", result.Category),
		zap.Int("points", result.PointsEarned))
	return &result, nil
}

// ParseClassification decodes the model answer, tolerating code fences.
// An unparseable answer becomes the landfill fallback.
func ParseClassification(text string) models.ClassificationResult {
	text = stripCodeFences(strings.TrimSpace(text))

	var result models.ClassificationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil || result.Category == "" {
		result = models.FallbackClassification()
	}
	result.PointsEarned = models.PointsForCategory(result.Category)
	return result
}

// EcoChat sends one chat turn with the prior history.
func (c *Client) EcoChat(ctx context.Context, message string, history []models.ChatMessage) (*models.ChatResponse, error) {
	cl, m, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(800)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatSystemPrompt)},
	}

	cs := m.StartChat()
	cs.History = toGeminiHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		c.logger.Error("EcoChat(): SendMessage failed", zap.Error(err))
		return nil, err
	}
	return BuildChatResponse(strings.TrimSpace(firstText(resp))), nil
}

// BuildChatResponse turns a raw model reply into a chat response, resolving
// any route tag the model appended.
func BuildChatResponse(reply string) *models.ChatResponse {
	cleaned, agent := patriotai.ExtractRouteTag(reply)
	out := &models.ChatResponse{Reply: cleaned}
	if agent != nil {
		key := agent.Key
		reason := agent.TagReason()
		out.RouteToPatriotAI = true
		out.PatriotAIAgent = &key
		out.PatriotAIReason = &reason
	}
	return out
}

func toGeminiHistory(history []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == models.RoleUser {
			role = "user"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return out
}

// DailyTip generates a short sustainability tip.
func (c *Client) DailyTip(ctx context.Context) (string, error) {
	cl, m, err := c.open(ctx)
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m.SetTemperature(0.9)
	m.SetMaxOutputTokens(100)

	resp, err := m.GenerateContent(ctx, genai.Text(dailyTipPrompt))
	if err != nil {
		c.logger.Error("DailyTip(): GenerateContent failed", zap.Error(err))
		return "", err
	}
	tip := strings.TrimSpace(firstText(resp))
	if tip == "" {
		return "", errors.New("gemini tip: empty response")
	}
	return tip, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func stripCodeFences(s string) string {
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
