package service_test

import (
	"context"
	"errors"
	"testing"

	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageService_GetStages(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db)
	for id := uint(1); id <= 3; id++ {
		seedStage(t, db, id)
	}
	stage1 := seedWords(t, db, 1, 5, 1)
	stage2 := seedWords(t, db, 2, 5, 1)
	seedWords(t, db, 3, 5, 2)

	// ステージ1は 3/5 = 60% で完了、ステージ2は 2/5 = 40%
	for _, w := range stage1[:3] {
		seedRating(t, db, user.UserID, w.WordID, 3)
	}
	seedRating(t, db, user.UserID, stage1[3].WordID, 2)
	for _, w := range stage2[:2] {
		seedRating(t, db, user.UserID, w.WordID, 5)
	}

	svc := service.NewStageService(db, repository.NewGormStageRepository(), repository.NewGormWordRepository(), repository.NewGormProgressRepository())
	stages, err := svc.GetStages(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, stages, 3)

	assert.Equal(t, 60.0, stages[0].Progress)
	assert.Equal(t, model.StageStatusCompleted, stages[0].Status)
	assert.Equal(t, int64(3), stages[0].WordsWithRating)
	assert.Equal(t, int64(5), stages[0].TotalWords)

	assert.Equal(t, 40.0, stages[1].Progress)
	assert.Equal(t, model.StageStatusInProgress, stages[1].Status)

	assert.Equal(t, 0.0, stages[2].Progress)
	assert.Equal(t, model.StageStatusLocked, stages[2].Status)

	t.Run("正常系: 他のユーザーの進捗は含まない", func(t *testing.T) {
		other := seedUser(t, db)
		stages, err := svc.GetStages(ctx, other.UserID)
		require.NoError(t, err)
		assert.Equal(t, model.StageStatusInProgress, stages[0].Status)
		assert.Equal(t, model.StageStatusLocked, stages[1].Status)
	})
}

func TestStageService_GetStageDetail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db)
	seedStage(t, db, 1)
	words := seedWords(t, db, 1, 3, 1)
	seedRating(t, db, user.UserID, words[1].WordID, 4)

	svc := service.NewStageService(db, repository.NewGormStageRepository(), repository.NewGormWordRepository(), repository.NewGormProgressRepository())

	t.Run("正常系: 英単語順に進捗つきで返す", func(t *testing.T) {
		detail, err := svc.GetStageDetail(ctx, user.UserID, 1)
		require.NoError(t, err)
		require.Len(t, detail.Words, 3)
		assert.Equal(t, "term-1-00", detail.Words[0].Term)
		assert.Nil(t, detail.Words[0].Progress)
		require.NotNil(t, detail.Words[1].Progress)
		assert.Equal(t, 4, detail.Words[1].Progress.StarRating)
	})

	t.Run("異常系: 存在しないステージ", func(t *testing.T) {
		_, err := svc.GetStageDetail(ctx, user.UserID, 99)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}
