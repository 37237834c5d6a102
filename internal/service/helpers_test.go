package service_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB はテストごとに独立したインメモリSQLiteを用意します
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		UserID:       uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStage(t *testing.T, db *gorm.DB, id uint) *model.Stage {
	t.Helper()
	stage := &model.Stage{
		StageID:    id,
		OrderIndex: int(id),
		Name:       fmt.Sprintf("Stage %d", id),
	}
	require.NoError(t, db.Create(stage).Error)
	return stage
}

// seedWords はステージに n 語を作ります。訳はすべて異なります
func seedWords(t *testing.T, db *gorm.DB, stageID uint, n, difficulty int) []*model.Word {
	t.Helper()
	words := make([]*model.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, &model.Word{
			WordID:          uuid.New(),
			StageID:         stageID,
			Term:            fmt.Sprintf("term-%d-%02d", stageID, i),
			Translation:     fmt.Sprintf("訳-%d-%02d", stageID, i),
			DifficultyLevel: difficulty,
		})
	}
	require.NoError(t, db.Create(&words).Error)
	return words
}

func seedRating(t *testing.T, db *gorm.DB, userID, wordID uuid.UUID, rating int) {
	t.Helper()
	require.NoError(t, db.Create(&model.UserWordProgress{
		ProgressID: uuid.New(),
		UserID:     userID,
		WordID:     wordID,
		StarRating: rating,
	}).Error)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
