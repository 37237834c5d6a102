package service_test

import (
	"context"
	"testing"
	"time"

	"go_vocab_trivia/internal/learning"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB, now time.Time) service.StatsService {
	svc := service.NewStatsService(db, service.StatsRepositories{
		User:     repository.NewGormUserRepository(),
		Stage:    repository.NewGormStageRepository(),
		Word:     repository.NewGormWordRepository(),
		Progress: repository.NewGormProgressRepository(),
		Session:  repository.NewGormSessionRepository(),
		Activity: repository.NewGormActivityRepository(),
	})
	service.SetStatsNow(svc, func() time.Time { return now })
	return svc
}

func seedActiveDay(t *testing.T, db *gorm.DB, userID uuid.UUID, day time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.UserDailyActivity{
		ActivityID:   uuid.New(),
		UserID:       userID,
		ActivityDate: learning.DayKey(day),
		IsActive:     true,
	}).Error)
}

func seedEndedSession(t *testing.T, db *gorm.DB, userID uuid.UUID, endedAt time.Time, score int) {
	t.Helper()
	accuracy := 80.0
	require.NoError(t, db.Create(&model.TriviaGameSession{
		SessionID:        uuid.New(),
		UserID:           userID,
		LivesConfigured:  3,
		Score:            score,
		Filters:          model.FilterCriteria{Source: model.WordSourceStages, StageIDs: []uint{1}},
		FeedbackLanguage: model.FeedbackLanguageEnglish,
		EndedAt:          &endedAt,
		Accuracy:         &accuracy,
	}).Error)
}

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	user := seedUser(t, db)
	seedStage(t, db, 1)
	seedStage(t, db, 2)
	words := seedWords(t, db, 1, 5, 1)

	// 星: 5, 4, 3, 2, 1
	for i, w := range words {
		seedRating(t, db, user.UserID, w.WordID, 5-i)
	}

	// 今日・昨日・一昨日がアクティブ、4日前は途切れている
	seedActiveDay(t, db, user.UserID, now)
	seedActiveDay(t, db, user.UserID, now.AddDate(0, 0, -1))
	seedActiveDay(t, db, user.UserID, now.AddDate(0, 0, -2))
	seedActiveDay(t, db, user.UserID, now.AddDate(0, 0, -4))

	for i := 0; i < 12; i++ {
		seedEndedSession(t, db, user.UserID, now.Add(time.Duration(i-12)*time.Hour), i*10)
	}

	stats, err := newStatsService(db, now).GetStats(ctx, user.UserID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Summary.TotalWords)
	assert.Equal(t, int64(2), stats.Summary.KnownWords)
	assert.Equal(t, int64(2), stats.Summary.WeakWords)
	assert.Equal(t, 1, stats.Summary.CompletedStages)
	assert.Equal(t, 3, stats.Summary.CurrentStreak)

	require.Len(t, stats.StageProgress, 2)
	assert.Equal(t, 60, stats.StageProgress[0].Progress)
	assert.Equal(t, 0, stats.StageProgress[1].Progress)

	require.Len(t, stats.TriviaHistory, service.TriviaHistoryLimit)
	assert.Equal(t, 20, stats.TriviaHistory[0].Score)
	assert.Equal(t, 110, stats.TriviaHistory[9].Score)
	assert.True(t, stats.TriviaHistory[0].Date.Before(stats.TriviaHistory[9].Date))
	assert.Equal(t, 80.0, stats.TriviaHistory[0].Accuracy)
}

func TestStatsService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

	t.Run("正常系: 最後に触れた単語のステージを返す", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db)
		seedStage(t, db, 1)
		seedStage(t, db, 2)
		w1 := seedWords(t, db, 1, 1, 1)[0]
		w2 := seedWords(t, db, 2, 1, 2)[0]
		earlier, later := now.Add(-time.Hour), now
		require.NoError(t, db.Create(&model.UserWordProgress{ProgressID: uuid.New(), UserID: user.UserID, WordID: w1.WordID, StarRating: 4, LastSeenAt: &later}).Error)
		require.NoError(t, db.Create(&model.UserWordProgress{ProgressID: uuid.New(), UserID: user.UserID, WordID: w2.WordID, StarRating: 1, LastSeenAt: &earlier}).Error)

		dash, err := newStatsService(db, now).GetDashboard(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), dash.TotalWords)
		assert.Equal(t, int64(1), dash.KnownWords)
		assert.Equal(t, int64(1), dash.WeakWords)
		assert.Equal(t, 0, dash.CurrentStreak)
		require.NotNil(t, dash.LastStage)
		assert.Equal(t, uint(1), dash.LastStage.StageID)
	})

	t.Run("正常系: 学習履歴が無いユーザー", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db)
		seedStage(t, db, 1)

		dash, err := newStatsService(db, now).GetDashboard(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), dash.TotalWords)
		assert.Nil(t, dash.LastStage)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		db := newTestDB(t)
		_, err := newStatsService(db, now).GetDashboard(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
