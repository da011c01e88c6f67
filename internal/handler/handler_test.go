package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"greenmason/internal/llm"
	"greenmason/internal/models"
	"greenmason/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeAssistant struct {
	err      error
	reply    string
	tip      string
	gotMime  string
	gotImage []byte
	gotMsg   string
	gotHist  []models.ChatMessage
}

func (f *fakeAssistant) ClassifyWaste(_ context.Context, image []byte, mimeType string) (*models.ClassificationResult, error) {
	f.gotImage, f.gotMime = image, mimeType
	if f.err != nil {
		return nil, f.err
	}
	r := llm.ParseClassification(`{"category":"recyclable","confidence":"high","item_name":"soda can"}`)
	return &r, nil
}

func (f *fakeAssistant) EcoChat(_ context.Context, message string, history []models.ChatMessage) (*models.ChatResponse, error) {
	f.gotMsg, f.gotHist = message, history
	if f.err != nil {
		return nil, f.err
	}
	return llm.BuildChatResponse(f.reply), nil
}

func (f *fakeAssistant) DailyTip(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.tip, nil
}

type fakeSpeaker struct{ text string }

func (f *fakeSpeaker) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.text = text
	return []byte("ID3audio"), nil
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(context.Context, []byte) (string, error) {
	return f.transcript, f.err
}

func setup(t *testing.T, assistant *fakeAssistant, opts ...Option) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, storage.InitDB(":memory:"))
	t.Cleanup(func() { _ = storage.Close() })

	if assistant == nil {
		assistant = &fakeAssistant{}
	}
	opts = append(opts, WithLogger(zaptest.NewLogger(t)))
	r := gin.New()
	New(assistant, opts...).Register(r)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func multipartRequest(t *testing.T, path, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	if contentType != "" {
		h["Content-Type"] = []string{contentType}
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateUser_NewAndExisting(t *testing.T) {
	r := setup(t, nil)

	w := do(r, http.MethodPost, "/api/users", models.UserCreate{Username: "jane_doe", DisplayName: "Jane Doe"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[models.User](t, w)
	assert.Equal(t, "Jane Doe", user.DisplayName)

	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "jane_doe", Action: "sort", Points: 15})

	w = do(r, http.MethodPost, "/api/users", models.UserCreate{Username: "jane_doe", DisplayName: "Other"})
	require.Equal(t, http.StatusOK, w.Code)
	user = decode[models.User](t, w)
	assert.Equal(t, "Jane Doe", user.DisplayName, "existing record is returned as-is")
	assert.Equal(t, 15, user.TotalScore)

	w = do(r, http.MethodPost, "/api/users", models.UserCreate{Username: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	r := setup(t, nil)

	w := do(r, http.MethodGet, "/api/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[ErrorResponse](t, w).Error)

	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "alice", Action: "sort", Points: 30})
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "bob", Action: "quiz", Points: 25})

	w = do(r, http.MethodGet, "/api/users/bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[models.User](t, w)
	require.NotNil(t, user.Rank)
	assert.Equal(t, 2, *user.Rank)
	assert.Equal(t, 25, user.TotalScore)
	assert.Equal(t, 1, user.ActionsCount)
}

func TestLogScoreValidation(t *testing.T) {
	r := setup(t, nil)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/scores", models.ScoreAction{Action: "sort", Points: 1}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "a", Action: "sort", Points: -5}).Code)

	w := do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "a", Action: "chat", Points: 5, Description: "Chatted"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.ScoreResult](t, w)
	assert.Equal(t, models.ScoreResult{Username: "a", PointsAdded: 5, NewTotal: 5, Action: "chat"}, res)
}

func TestLeaderboard(t *testing.T) {
	r := setup(t, nil)
	do(r, http.MethodPost, "/api/users", models.UserCreate{Username: "zero"})
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "alice", Action: "sort", Points: 10})
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "bob", Action: "sort", Points: 20})

	w := do(r, http.MethodGet, "/api/leaderboard?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[models.LeaderboardResponse](t, w)
	require.Equal(t, 2, board.TotalEntries)
	assert.Equal(t, "bob", board.Leaderboard[0].Username)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/leaderboard?limit=abc", nil).Code)
}

func TestUserActions(t *testing.T) {
	r := setup(t, nil)
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "alice", Action: "sort", Points: 10, Description: "Sorted: can (recyclable)"})

	w := do(r, http.MethodGet, "/api/users/alice/actions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.ActionsResponse](t, w)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Sorted: can (recyclable)", out.Actions[0].Description)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/users/ghost/actions", nil).Code)
}

func TestPledges(t *testing.T) {
	r := setup(t, nil)

	w := do(r, http.MethodPost, "/api/pledges", models.PledgeCreate{Username: "jane_doe", PledgeText: "I will compost"})
	require.Equal(t, http.StatusOK, w.Code)
	pledge := decode[models.Pledge](t, w)
	assert.NotEmpty(t, pledge.ID)

	user := decode[models.User](t, do(r, http.MethodGet, "/api/users/jane_doe", nil))
	assert.Equal(t, models.PointsPledge, user.TotalScore)

	w = do(r, http.MethodPost, "/api/pledges", models.PledgeCreate{Username: "jane_doe", PledgeText: strings.Repeat("x", models.MaxPledgeLength+1)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/pledges/"+pledge.ID+"/like", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/pledges/nope/like", nil).Code)

	list := decode[models.PledgesResponse](t, do(r, http.MethodGet, "/api/pledges", nil))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Pledges[0].Likes)
}

func TestClassify(t *testing.T) {
	assistant := &fakeAssistant{}
	r := setup(t, assistant)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	w := do(r, http.MethodPost, "/api/classify", models.ClassificationRequest{ImageBase64: base64.StdEncoding.EncodeToString(png)})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.ClassificationResult](t, w)
	assert.Equal(t, 15, res.PointsEarned)
	assert.Equal(t, "image/png", assistant.gotMime, "missing type is sniffed")

	dataURI := "data:image/webp;base64," + base64.StdEncoding.EncodeToString([]byte("abc"))
	w = do(r, http.MethodPost, "/api/classify", models.ClassificationRequest{ImageBase64: dataURI})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/webp", assistant.gotMime)
	assert.Equal(t, []byte("abc"), assistant.gotImage)

	w = do(r, http.MethodPost, "/api/classify", models.ClassificationRequest{ImageBase64: "%%%"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyUpload(t *testing.T) {
	assistant := &fakeAssistant{}
	r := setup(t, assistant)

	req := multipartRequest(t, "/api/classify/upload", "file", "can.jpg", "image/jpeg", []byte("jpegdata"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/jpeg", assistant.gotMime)
	assert.Equal(t, []byte("jpegdata"), assistant.gotImage)

	req = multipartRequest(t, "/api/classify/upload", "other", "x.jpg", "", []byte("x"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassify_AIErrors(t *testing.T) {
	r := setup(t, &fakeAssistant{err: llm.ErrMissingAPIKey})
	w := do(r, http.MethodPost, "/api/classify", models.ClassificationRequest{ImageBase64: base64.StdEncoding.EncodeToString([]byte("x"))})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	r = setup(t, &fakeAssistant{err: errors.New("quota exceeded")})
	w = do(r, http.MethodPost, "/api/classify", models.ClassificationRequest{ImageBase64: base64.StdEncoding.EncodeToString([]byte("x"))})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Error, "quota exceeded")
}

func TestChat_Routing(t *testing.T) {
	t.Run("model tag wins", func(t *testing.T) {
		r := setup(t, &fakeAssistant{reply: "Ask about aid there. [ROUTE:PatriotPal]"})
		w := do(r, http.MethodPost, "/api/chat", models.ChatRequest{Message: "where is the food pantry"})
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[models.ChatResponse](t, w)
		assert.Equal(t, "Ask about aid there.", res.Reply)
		require.NotNil(t, res.PatriotAIAgent)
		assert.Equal(t, "PatriotPal", *res.PatriotAIAgent)
	})

	t.Run("keyword fallback", func(t *testing.T) {
		r := setup(t, &fakeAssistant{reply: "The pantry is in SUB I."})
		w := do(r, http.MethodPost, "/api/chat", models.ChatRequest{Message: "where is the food pantry"})
		res := decode[models.ChatResponse](t, w)
		assert.True(t, res.RouteToPatriotAI)
		require.NotNil(t, res.PatriotAIAgent)
		assert.Equal(t, "NourishNet", *res.PatriotAIAgent)
		require.NotNil(t, res.PatriotAIReason)
		assert.Contains(t, *res.PatriotAIReason, "NourishNet on PatriotAI")
	})

	t.Run("no route", func(t *testing.T) {
		assistant := &fakeAssistant{reply: "Rinse it and recycle it."}
		r := setup(t, assistant)
		history := []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}, {Role: models.RoleAssistant, Content: "hello"}}
		w := do(r, http.MethodPost, "/api/chat", models.ChatRequest{Message: "glass jar?", History: history})
		res := decode[models.ChatResponse](t, w)
		assert.False(t, res.RouteToPatriotAI)
		assert.Nil(t, res.PatriotAIAgent)
		assert.Equal(t, history, assistant.gotHist)
	})

	t.Run("empty message", func(t *testing.T) {
		r := setup(t, nil)
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/chat", models.ChatRequest{Message: " "}).Code)
	})
}

func TestVoiceChat(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		r := setup(t, nil)
		req := multipartRequest(t, "/api/chat/voice", "audio", "q.wav", "audio/wav", []byte("pcm"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("transcribed", func(t *testing.T) {
		assistant := &fakeAssistant{reply: "Use the blue bins."}
		r := setup(t, assistant, WithTranscriber(&fakeTranscriber{transcript: "where do cans go"}))
		req := multipartRequest(t, "/api/chat/voice", "audio", "q.wav", "audio/wav", []byte("pcm"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[models.VoiceChatResponse](t, w)
		assert.Equal(t, "where do cans go", res.Transcript)
		assert.Equal(t, "Use the blue bins.", res.Reply)
		assert.Equal(t, "where do cans go", assistant.gotMsg)
	})

	t.Run("silence", func(t *testing.T) {
		r := setup(t, nil, WithTranscriber(&fakeTranscriber{err: llm.ErrNoSpeech}))
		req := multipartRequest(t, "/api/chat/voice", "audio", "q.wav", "audio/wav", []byte("pcm"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestVoice(t *testing.T) {
	speaker := &fakeSpeaker{}
	r := setup(t, &fakeAssistant{tip: "Bring a mug.\nSave a cup."}, WithSpeaker(speaker))

	w := do(r, http.MethodGet, "/api/voice/tip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	tip, err := url.QueryUnescape(w.Header().Get("X-Tip-Text"))
	require.NoError(t, err)
	assert.Equal(t, "Bring a mug. Save a cup.", tip)
	assert.Equal(t, "ID3audio", w.Body.String())

	w = do(r, http.MethodGet, "/api/voice/tip/text", nil)
	assert.Equal(t, "Bring a mug.\nSave a cup.", decode[models.TipResponse](t, w).Tip)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/voice/speak", models.VoiceRequest{}).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/voice/speak", models.VoiceRequest{Text: "hello"}).Code)
	assert.Equal(t, "hello", speaker.text)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/voice/score/ghost", nil).Code)
	do(r, http.MethodPost, "/api/users", models.UserCreate{Username: "jane_doe", DisplayName: "Jane"})
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "jane_doe", Action: "sort", Points: 15})
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/voice/score/jane_doe", nil).Code)
	assert.Contains(t, speaker.text, "Hey Jane! Your Green Score is 15 points")
}

func TestVoice_NotConfigured(t *testing.T) {
	r := setup(t, &fakeAssistant{tip: "tip"})
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/voice/tip", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodPost, "/api/voice/speak", models.VoiceRequest{Text: "x"}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/ws/leaderboard", nil).Code)
}

func TestPatriotAI(t *testing.T) {
	r := setup(t, nil)

	w := do(r, http.MethodGet, "/api/patriotai/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dir := decode[map[string]any](t, w)
	assert.Equal(t, "PatriotAI", dir["platform"])

	req := httptest.NewRequest(http.MethodPost, "/api/patriotai/route", strings.NewReader("message=how+do+I+register+for+classes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	decision := decode[map[string]any](t, w)
	assert.Equal(t, true, decision["should_route"])

	req = httptest.NewRequest(http.MethodPost, "/api/patriotai/route", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsAndHealth(t *testing.T) {
	r := setup(t, nil)
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "a", Action: "sort", Points: 15})
	do(r, http.MethodPost, "/api/scores", models.ScoreAction{Username: "b", Action: "chat", Points: 5})

	stats := decode[models.GlobalStats](t, do(r, http.MethodGet, "/api/stats", nil))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalActions)
	assert.Equal(t, 20, stats.TotalPoints)
	assert.Equal(t, 1, stats.ActionBreakdown["chat"])

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", nil).Code)
	banner := decode[map[string]any](t, do(r, http.MethodGet, "/", nil))
	assert.Equal(t, "GreenMason API", banner["name"])
}
