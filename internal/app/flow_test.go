package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const flowCookieName = "session_token"

func flowConfig() *config.Config {
	return &config.Config{
		Auth:   config.AuthConfig{Enabled: true},
		JWT:    config.JWTConfig{SecretKey: "flow-test-secret", AccessTokenTTL: time.Hour},
		Cookie: config.CookieConfig{Name: flowCookieName},
		Trivia: config.TriviaConfig{RevealCorrectIndex: true, LockTimeout: 5 * time.Second},
		Locker: config.LockerConfig{Type: "memory"},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    config.DefaultMetricsPath,
		},
	}
}

// seedCatalog はステージ1 (20語) とステージ2 (10語) を投入し、ステージ1の単語を返します
func seedCatalog(t *testing.T, db *gorm.DB) []model.Word {
	t.Helper()
	stages := []model.Stage{
		{StageID: 1, OrderIndex: 1, Name: "Basics", DifficultyRange: "1"},
		{StageID: 2, OrderIndex: 2, Name: "Travel", DifficultyRange: "1-2"},
	}
	require.NoError(t, db.Create(&stages).Error)

	var first []model.Word
	for stageID, n := range map[uint]int{1: 20, 2: 10} {
		words := make([]model.Word, 0, n)
		for i := 0; i < n; i++ {
			words = append(words, model.Word{
				WordID:          uuid.New(),
				StageID:         stageID,
				Term:            fmt.Sprintf("word-%d-%02d", stageID, i),
				Translation:     fmt.Sprintf("意味-%d-%02d", stageID, i),
				DifficultyLevel: 1,
			})
		}
		require.NoError(t, db.Create(&words).Error)
		if stageID == 1 {
			first = words
		}
	}
	return first
}

// apiClient はBearerトークンつきでAPIを呼び出します
type apiClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func (c *apiClient) do(method, path string, body interface{}, expectedCode int, out interface{}) *http.Response {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	require.Equal(c.t, expectedCode, resp.StatusCode, "%s %s: %s", method, path, string(respBody))

	if out != nil {
		require.NoError(c.t, json.Unmarshal(respBody, out), string(respBody))
	}
	return resp
}

// runGameFlow は登録から1ゲーム完走、統計確認までをAPI経由で行います
func runGameFlow(t *testing.T, server *httptest.Server, db *gorm.DB) {
	words := seedCatalog(t, db)
	client := &apiClient{t: t, server: server}
	email := fmt.Sprintf("flow-%s@example.com", uuid.NewString()[:8])

	// 未認証
	client.do(http.MethodGet, "/api/v1/stages", nil, http.StatusUnauthorized, nil)

	var auth model.AuthResponse
	client.do(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":        strings.ToUpper(email),
		"password":     "secret123",
		"display_name": "Flow",
	}, http.StatusCreated, &auth)
	require.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, email, auth.User.Email)
	client.token = auth.AccessToken

	// Cookie でも認証できる
	cookieClient := &apiClient{t: t, server: server}
	loginResp := cookieClient.do(http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	}, http.StatusOK, nil)
	var sessionCookie *http.Cookie
	for _, c := range loginResp.Cookies() {
		if c.Name == flowCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/auth/me", nil)
	require.NoError(t, err)
	req.AddCookie(sessionCookie)
	meResp, err := server.Client().Do(req)
	require.NoError(t, err)
	meResp.Body.Close()
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	var stages []model.StageSummaryResponse
	client.do(http.MethodGet, "/api/v1/stages", nil, http.StatusOK, &stages)
	require.Len(t, stages, 2)
	assert.Equal(t, model.StageStatusInProgress, stages[0].Status)
	assert.Equal(t, model.StageStatusLocked, stages[1].Status)

	var view model.WordProgressView
	client.do(http.MethodPut, "/api/v1/words/"+words[0].WordID.String()+"/progress", map[string]interface{}{
		"star_rating": 5,
		"notes":       "easy",
	}, http.StatusOK, &view)
	assert.Equal(t, 5, view.StarRating)

	filter := map[string]interface{}{
		"word_source": "stages",
		"stage_ids":   []uint{1},
		"star_filter": map[string]bool{"weak": true, "medium": true, "strong": true},
	}
	var estimate model.EstimatePoolResponse
	client.do(http.MethodPost, "/api/v1/trivia/estimate", filter, http.StatusOK, &estimate)
	assert.Equal(t, 20, estimate.Count)

	filter["lives"] = 3
	var created model.CreateSessionResponse
	client.do(http.MethodPost, "/api/v1/trivia/sessions", filter, http.StatusCreated, &created)
	assert.Equal(t, model.FeedbackLanguageHebrew, created.FeedbackLanguage)
	sessionPath := "/api/v1/trivia/sessions/" + created.SessionID.String()

	rounds := 0
	for {
		var round model.RoundResponse
		client.do(http.MethodGet, sessionPath+"/round", nil, http.StatusOK, &round)
		if round.GameCompleted {
			break
		}
		require.NotNil(t, round.CorrectIndex)
		require.Len(t, round.Options, model.TriviaOptionCount)

		var result model.SubmitAnswerResponse
		client.do(http.MethodPost, sessionPath+"/answers", map[string]interface{}{
			"word_id":            round.Word.WordID,
			"selected_index":     *round.CorrectIndex,
			"time_taken_seconds": 3,
		}, http.StatusOK, &result)
		require.True(t, result.IsCorrect)
		rounds++
		require.LessOrEqual(t, rounds, model.TriviaRoundsPerGame)
	}
	assert.Equal(t, model.TriviaRoundsPerGame, rounds)

	var summary model.GameSummaryResponse
	client.do(http.MethodGet, sessionPath+"/summary", nil, http.StatusOK, &summary)
	assert.True(t, summary.Ended)
	assert.Equal(t, 220, summary.Score)
	assert.Equal(t, float64(100), summary.Accuracy)
	assert.Equal(t, model.TriviaRoundsPerGame, summary.LongestStreak)
	assert.Empty(t, summary.IncorrectWords)

	var stats model.StatsResponse
	client.do(http.MethodGet, "/api/v1/stats", nil, http.StatusOK, &stats)
	require.Len(t, stats.TriviaHistory, 1)
	assert.Equal(t, 220, stats.TriviaHistory[0].Score)
	assert.Equal(t, 1, stats.Summary.CurrentStreak)

	var dashboard model.DashboardResponse
	client.do(http.MethodGet, "/api/v1/dashboard", nil, http.StatusOK, &dashboard)
	require.NotNil(t, dashboard.DisplayName)
	assert.Equal(t, "Flow", *dashboard.DisplayName)
	require.NotNil(t, dashboard.LastStage)
	assert.Equal(t, uint(1), dashboard.LastStage.StageID)

	resp, err := server.Client().Get(server.URL + config.DefaultMetricsPath)
	require.NoError(t, err)
	metricsBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), "trivia_games_completed_total")
}
