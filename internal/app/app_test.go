package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:     config.ServerConfig{Port: "0", Mode: "test"},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit:  config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		Session:    config.SessionConfig{TTLMinutes: 5},
		Assessment: config.AssessmentConfig{Thresholds: assessment.DefaultThresholds()},
	}
	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func do(t *testing.T, a *App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func TestNew_InvalidThresholds(t *testing.T) {
	_, err := New(&config.Config{
		RateLimit:  config.RateLimitConfig{MaxRequests: 10, WindowMinutes: 1},
		Session:    config.SessionConfig{TTLMinutes: 5},
		Assessment: config.AssessmentConfig{Thresholds: assessment.Thresholds{MaintenanceMax: 9, StressManagementMax: 2}},
	})
	assert.ErrorIs(t, err, assessment.ErrInvalidThresholds)
}

func TestRoutes_Health(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"ok"`)
}

func TestRoutes_Questions(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodGet, "/api/assessment/questions", nil)
	require.Equal(t, http.StatusOK, code)

	var qs []struct {
		ID      string `json:"id"`
		Options []struct {
			Value int `json:"value"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &qs))
	require.Len(t, qs, 7)
	assert.Equal(t, "sleep", qs[4].ID)
	assert.Equal(t, 3, qs[4].Options[0].Value)
}

func TestRoutes_Score(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodPost, "/api/assessment/score", gin.H{"answers": []int{1, 1, 1, 1, 1, 1, 1}})
	require.Equal(t, http.StatusOK, code)

	var out struct {
		Score struct {
			RawScore     int `json:"rawScore"`
			DisplayScore int `json:"displayScore"`
		} `json:"score"`
		Recommendation struct {
			Variant string   `json:"variant"`
			Focus   []string `json:"focus"`
			Insight string   `json:"insight"`
		} `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 7, out.Score.RawScore)
	assert.Equal(t, 67, out.Score.DisplayScore)
	assert.Equal(t, "maintenance", out.Recommendation.Variant)
	assert.Len(t, out.Recommendation.Focus, 3)
	assert.Contains(t, out.Recommendation.Insight, "solid foundation")
}

func TestRoutes_ScoreRejectsIncomplete(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodPost, "/api/assessment/score", gin.H{"answers": []int{1, 2, 3}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "incomplete assessment")

	code, _ = do(t, a, http.MethodPost, "/api/assessment/score", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRoutes_SessionFlow(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodPost, "/api/assessment/sessions", nil)
	require.Equal(t, http.StatusCreated, code)

	var state struct {
		SessionID     string `json:"sessionId"`
		QuestionIndex int    `json:"questionIndex"`
		Completed     bool   `json:"completed"`
		Outcome       *struct {
			Score struct {
				RawScore int `json:"rawScore"`
			} `json:"score"`
			Recommendation struct {
				Variant string `json:"variant"`
			} `json:"recommendation"`
		} `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	id := state.SessionID
	require.NotEmpty(t, id)

	code, _ = do(t, a, http.MethodPost, "/api/assessment/sessions/"+id+"/answer", gin.H{"value": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, a, http.MethodPost, "/api/assessment/sessions/"+id+"/answer", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)

	for i := 0; i < 7; i++ {
		code, env = do(t, a, http.MethodPost, "/api/assessment/sessions/"+id+"/answer", gin.H{"value": 3})
		require.Equal(t, http.StatusOK, code)
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.Completed)
	require.NotNil(t, state.Outcome)
	assert.Equal(t, 21, state.Outcome.Score.RawScore)
	assert.Equal(t, "intensive_support", state.Outcome.Recommendation.Variant)

	code, _ = do(t, a, http.MethodGet, "/api/assessment/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, a, http.MethodPost, "/api/assessment/sessions/"+id+"/back", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_Catalog(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodGet, "/api/audiobooks?category=Anxiety", nil)
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)

	code, env = do(t, a, http.MethodGet, "/api/exercises?category=All&sort=difficulty", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 5, list.Total)

	code, _ = do(t, a, http.MethodGet, "/api/games?category=Chess", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, a, http.MethodGet, "/api/games/memory-cards", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, a, http.MethodGet, "/api/exercises/99", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_Dashboard(t *testing.T) {
	a := newTestApp(t)

	code, env := do(t, a, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"currentMood":"Calm"`)
}

func TestRoutes_Metrics(t *testing.T) {
	a := newTestApp(t)

	do(t, a, http.MethodGet, "/api/health", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
