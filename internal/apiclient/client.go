// Package apiclient talks to the GreenMason API over HTTP.
package apiclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"greenmason/internal/models"
	"greenmason/internal/patriotai"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends req and returns the response when its status is 2xx. The caller
// closes the body.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("do(): request failed", zap.String("op", op), zap.String("url", req.URL.String()), zap.Error(err))
		return nil, &NetworkError{Op: op, Err: err}
	}
	c.logger.Debug("do(): response",
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	return resp, nil
}

// errorDetail pulls the message out of {"error": ...} or {"detail": ...}
// bodies, falling back to the raw text.
func errorDetail(body []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Detail any    `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if s, ok := payload.Detail.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) newRequest(ctx context.Context, op, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(op, req, out)
}

func (c *Client) send(op string, req *http.Request, out any) error {
	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) getBytes(ctx context.Context, op, method, path string, in any) ([]byte, http.Header, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, op, method, path, body)
	if err != nil {
		return nil, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.do(op, req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Op: op, Err: err}
	}
	return data, resp.Header, nil
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}

func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, "health", http.MethodGet, "/health", nil, nil)
}

// CreateUser registers username. The server answers with the existing
// record when the name is taken.
func (c *Client) CreateUser(ctx context.Context, username, displayName string) (*models.User, error) {
	var user models.User
	err := c.doJSON(ctx, "create user", http.MethodPost, "/api/users",
		models.UserCreate{Username: username, DisplayName: displayName}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, "get user", http.MethodGet, "/api/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UserActions(ctx context.Context, username string, limit int) (*models.ActionsResponse, error) {
	var out models.ActionsResponse
	path := "/api/users/" + url.PathEscape(username) + "/actions" + limitQuery(limit)
	if err := c.doJSON(ctx, "user actions", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LogScore(ctx context.Context, action models.ScoreAction) (*models.ScoreResult, error) {
	var out models.ScoreResult
	if err := c.doJSON(ctx, "log score", http.MethodPost, "/api/scores", action, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Leaderboard(ctx context.Context, limit int) (*models.LeaderboardResponse, error) {
	var out models.LeaderboardResponse
	if err := c.doJSON(ctx, "leaderboard", http.MethodGet, "/api/leaderboard"+limitQuery(limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePledge(ctx context.Context, username, text string) (*models.Pledge, error) {
	var out models.Pledge
	err := c.doJSON(ctx, "create pledge", http.MethodPost, "/api/pledges",
		models.PledgeCreate{Username: username, PledgeText: text}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Pledges(ctx context.Context, limit int) (*models.PledgesResponse, error) {
	var out models.PledgesResponse
	if err := c.doJSON(ctx, "pledges", http.MethodGet, "/api/pledges"+limitQuery(limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LikePledge(ctx context.Context, id string) error {
	return c.doJSON(ctx, "like pledge", http.MethodPost, "/api/pledges/"+url.PathEscape(id)+"/like", nil, nil)
}

func (c *Client) newMultipart(ctx context.Context, op, path, field, filename, contentType string, data []byte) (*http.Request, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := c.newRequest(ctx, op, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

// ClassifyUpload sends an image as the multipart "file" field.
func (c *Client) ClassifyUpload(ctx context.Context, filename, contentType string, data []byte) (*models.ClassificationResult, error) {
	const op = "classify upload"
	req, err := c.newMultipart(ctx, op, "/api/classify/upload", "file", filename, contentType, data)
	if err != nil {
		return nil, err
	}
	var out models.ClassificationResult
	if err := c.send(op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VoiceChat uploads a LINEAR16 recording and returns the transcript with the reply.
func (c *Client) VoiceChat(ctx context.Context, filename string, audio []byte) (*models.VoiceChatResponse, error) {
	const op = "voice chat"
	req, err := c.newMultipart(ctx, op, "/api/chat/voice", "audio", filename, "audio/wav", audio)
	if err != nil {
		return nil, err
	}
	var out models.VoiceChatResponse
	if err := c.send(op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Classify sends an image inline as base64 JSON.
func (c *Client) Classify(ctx context.Context, data []byte, mimeType string) (*models.ClassificationResult, error) {
	var out models.ClassificationResult
	err := c.doJSON(ctx, "classify", http.MethodPost, "/api/classify", models.ClassificationRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    mimeType,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Chat(ctx context.Context, message string, history []models.ChatMessage) (*models.ChatResponse, error) {
	if history == nil {
		history = []models.ChatMessage{}
	}
	var out models.ChatResponse
	err := c.doJSON(ctx, "chat", http.MethodPost, "/api/chat", models.ChatRequest{Message: message, History: history}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*models.GlobalStats, error) {
	var out models.GlobalStats
	if err := c.doJSON(ctx, "stats", http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TipText(ctx context.Context) (string, error) {
	var out models.TipResponse
	if err := c.doJSON(ctx, "tip", http.MethodGet, "/api/voice/tip/text", nil, &out); err != nil {
		return "", err
	}
	return out.Tip, nil
}

// TipAudio returns the spoken daily tip as MP3 along with its text.
func (c *Client) TipAudio(ctx context.Context) ([]byte, string, error) {
	audio, header, err := c.getBytes(ctx, "tip audio", http.MethodGet, "/api/voice/tip", nil)
	if err != nil {
		return nil, "", err
	}
	tip, err := url.QueryUnescape(header.Get("X-Tip-Text"))
	if err != nil {
		tip = header.Get("X-Tip-Text")
	}
	return audio, tip, nil
}

func (c *Client) Speak(ctx context.Context, text string) ([]byte, error) {
	audio, _, err := c.getBytes(ctx, "speak", http.MethodPost, "/api/voice/speak", models.VoiceRequest{Text: text})
	return audio, err
}

func (c *Client) ScoreAudio(ctx context.Context, username string) ([]byte, error) {
	audio, _, err := c.getBytes(ctx, "score audio", http.MethodGet, "/api/voice/score/"+url.PathEscape(username), nil)
	return audio, err
}

func (c *Client) Agents(ctx context.Context) (*patriotai.Directory, error) {
	var out patriotai.Directory
	if err := c.doJSON(ctx, "agents", http.MethodGet, "/api/patriotai/agents", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Route(ctx context.Context, message string) (*patriotai.Decision, error) {
	const op = "route"
	form := url.Values{"message": {message}}
	req, err := c.newRequest(ctx, op, http.MethodPost, "/api/patriotai/route", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out patriotai.Decision
	if err := c.send(op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
