package apiclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"greenmason/internal/models"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second, WithLogger(zaptest.NewLogger(t)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreateAndGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var in models.UserCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusOK, models.User{Username: in.Username, DisplayName: in.DisplayName})
	})
	mux.HandleFunc("GET /api/users/{username}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("username") != "jane_doe" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
			return
		}
		rank := 3
		writeJSON(w, http.StatusOK, models.User{Username: "jane_doe", TotalScore: 45, Rank: &rank})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	user, err := c.CreateUser(ctx, "jane_doe", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.DisplayName)

	user, err = c.GetUser(ctx, "jane_doe")
	require.NoError(t, err)
	assert.Equal(t, 45, user.TotalScore)
	require.NotNil(t, user.Rank)
	assert.Equal(t, 3, *user.Rank)

	_, err = c.GetUser(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNetwork(err))
	assert.Contains(t, err.Error(), "user not found")
}

func TestRemoteErrorDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scores", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "points must be positive"})
	})
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down\n")
	})
	c := newTestClient(t, mux)

	_, err := c.LogScore(context.Background(), models.ScoreAction{Username: "a", Action: "sort", Points: -1})
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusUnprocessableEntity, re.StatusCode)
	assert.Equal(t, "points must be positive", re.Detail)

	_, err = c.Stats(context.Background())
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "upstream down", re.Detail)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(base, time.Second)
	_, err := c.GetUser(context.Background(), "jane_doe")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.False(t, IsNotFound(err))
}

func TestLogScoreAndLeaderboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scores", func(w http.ResponseWriter, r *http.Request) {
		var in models.ScoreAction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.ScoreResult{Username: in.Username, PointsAdded: in.Points, NewTotal: 30, Action: in.Action})
	})
	mux.HandleFunc("GET /api/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, models.LeaderboardResponse{
			Leaderboard:  []models.LeaderboardEntry{{Rank: 1, Username: "jane_doe", TotalScore: 30}},
			TotalEntries: 1,
		})
	})
	c := newTestClient(t, mux)

	res, err := c.LogScore(context.Background(), models.ScoreAction{Username: "jane_doe", Action: "sort", Points: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, res.PointsAdded)
	assert.Equal(t, 30, res.NewTotal)

	board, err := c.Leaderboard(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, board.Leaderboard, 1)
	assert.Equal(t, "jane_doe", board.Leaderboard[0].Username)
}

func TestPledges(t *testing.T) {
	var liked string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/pledges", func(w http.ResponseWriter, r *http.Request) {
		var in models.PledgeCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.Pledge{ID: "p1", Username: in.Username, PledgeText: in.PledgeText})
	})
	mux.HandleFunc("GET /api/pledges", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, models.PledgesResponse{Pledges: []models.Pledge{{ID: "p1", Likes: 2}}, Total: 1})
	})
	mux.HandleFunc("POST /api/pledges/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		liked = r.PathValue("id")
		writeJSON(w, http.StatusOK, map[string]bool{"liked": true})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	p, err := c.CreatePledge(ctx, "jane_doe", "Bike to campus")
	require.NoError(t, err)
	assert.Equal(t, "Bike to campus", p.PledgeText)

	list, err := c.Pledges(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, c.LikePledge(ctx, "p1"))
	assert.Equal(t, "p1", liked)
}

func TestClassifyUpload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/classify/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)

		assert.Equal(t, "can.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg bytes"), data)
		writeJSON(w, http.StatusOK, models.ClassificationResult{Category: "recyclable", ItemName: "soda can", PointsEarned: 15})
	})
	c := newTestClient(t, mux)

	res, err := c.ClassifyUpload(context.Background(), "can.jpg", "image/jpeg", []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "soda can", res.ItemName)
	assert.Equal(t, 15, res.PointsEarned)
}

func TestClassifyBase64(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/classify", func(w http.ResponseWriter, r *http.Request) {
		var in models.ClassificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		data, err := base64.StdEncoding.DecodeString(in.ImageBase64)
		require.NoError(t, err)
		assert.Equal(t, "png bytes", string(data))
		assert.Equal(t, "image/png", in.MimeType)
		writeJSON(w, http.StatusOK, models.ClassificationResult{Category: "compostable"})
	})
	c := newTestClient(t, mux)

	res, err := c.Classify(context.Background(), []byte("png bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "compostable", res.Category)
}

func TestChat(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
		var in models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.NotNil(t, in.History)
		agent := "NourishNet"
		writeJSON(w, http.StatusOK, models.ChatResponse{Reply: "Try the pantry.", RouteToPatriotAI: true, PatriotAIAgent: &agent})
	})
	c := newTestClient(t, mux)

	res, err := c.Chat(context.Background(), "I'm hungry", nil)
	require.NoError(t, err)
	assert.True(t, res.RouteToPatriotAI)
	require.NotNil(t, res.PatriotAIAgent)
	assert.Equal(t, "NourishNet", *res.PatriotAIAgent)
	assert.Nil(t, res.PatriotAIReason)
}

func TestTipAudioAndText(t *testing.T) {
	tip := "Bring a mug to Starbucks & save 10¢"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/voice/tip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("X-Tip-Text", url.QueryEscape(tip))
		_, _ = w.Write([]byte("ID3mp3"))
	})
	mux.HandleFunc("GET /api/voice/tip/text", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.TipResponse{Tip: tip})
	})
	c := newTestClient(t, mux)

	audio, text, err := c.TipAudio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3mp3"), audio)
	assert.Equal(t, tip, text)

	text, err = c.TipText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tip, text)
}

func TestRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/patriotai/route", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "where is the food pantry", r.PostForm.Get("message"))
		writeJSON(w, http.StatusOK, map[string]any{"should_route": true, "reason": "go"})
	})
	c := newTestClient(t, mux)

	d, err := c.Route(context.Background(), "where is the food pantry")
	require.NoError(t, err)
	assert.True(t, d.ShouldRoute)
	assert.Equal(t, "go", d.Reason)
}

func TestDefaults(t *testing.T) {
	c := New("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}
