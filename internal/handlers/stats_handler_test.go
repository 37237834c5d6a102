package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()
	app := newTestApp(t)
	app.stats.On("GetStats", mock.Anything, userID).Return(&model.StatsResponse{
		Summary:       model.StatsSummary{TotalWords: 12, KnownWords: 5, WeakWords: 3, CompletedStages: 1, CurrentStreak: 2},
		StageProgress: []model.StageProgressStat{{StageID: 1, Name: "Stage 1", Progress: 67}},
		TriviaHistory: []model.TriviaHistoryItem{{SessionID: uuid.New(), Date: time.Now().UTC(), Score: 120, Accuracy: 80}},
	}, nil).Once()

	_, body := sendRequest(t, app.server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/stats",
		Headers: userHeader(userID),
	}, http.StatusOK)

	got := decodeBody[model.StatsResponse](t, body)
	assert.Equal(t, int64(12), got.Summary.TotalWords)
	assert.Equal(t, 2, got.Summary.CurrentStreak)
	require.Len(t, got.StageProgress, 1)
	assert.Equal(t, 67, got.StageProgress[0].Progress)
	require.Len(t, got.TriviaHistory, 1)
}

func TestStatsHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: ダッシュボード", func(t *testing.T) {
		app := newTestApp(t)
		app.stats.On("GetDashboard", mock.Anything, userID).Return(&model.DashboardResponse{
			DisplayName:     strPtr("Learner"),
			TotalWords:      4,
			CompletedStages: 0,
			LastStage:       &model.LibraryStage{StageID: 2, Name: "Stage 2"},
		}, nil).Once()

		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/dashboard",
			Headers: userHeader(userID),
		}, http.StatusOK)

		got := decodeBody[model.DashboardResponse](t, body)
		require.NotNil(t, got.LastStage)
		assert.Equal(t, uint(2), got.LastStage.StageID)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		app := newTestApp(t)
		app.stats.On("GetDashboard", mock.Anything, userID).
			Return(nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)).Once()

		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/dashboard",
			Headers: userHeader(userID),
		}, http.StatusNotFound)
		verifyErrorCode(t, body, "USER_NOT_FOUND")
	})
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)
	_, body := sendRequest(t, app.server, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/health",
	}, http.StatusOK)
	assert.Equal(t, "OK", string(body))
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t)
	resp, _ := sendRequest(t, app.server, httpRequestDetails{
		Method: http.MethodOptions,
		Path:   "/api/v1/stages",
		Headers: map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodGet,
		},
	}, http.StatusNoContent)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
