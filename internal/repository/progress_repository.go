//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingCounts はユーザーの星評価別の集計です
type RatingCounts struct {
	Total int64
	Known int64 // 星4以上
	Weak  int64 // 星2以下
}

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserWordProgress) error
	Update(ctx context.Context, tx *gorm.DB, progress *model.UserWordProgress) error
	FindByUserAndWord(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.UserWordProgress, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserWordProgress, error)
	FindByUserAndWords(ctx context.Context, db *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID) ([]*model.UserWordProgress, error)
	CountRatedByStage(ctx context.Context, db *gorm.DB, userID uuid.UUID, minRating int) ([]model.StageWordCount, error)
	CountRatings(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*RatingCounts, error)
	FindLastSeen(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserWordProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserWordProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate progress for user and word", "user_id", progress.UserID, "word_id", progress.WordID)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", result.Error, "word_id", progress.WordID)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.UserWordProgress) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(progress).
		Select("star_rating", "correct_count", "incorrect_count", "correct_streak", "last_answer_result", "notes", "last_seen_at", "updated_at").
		Updates(progress)
	if result.Error != nil {
		logger.Error("Error updating progress in DB", "error", result.Error, "progress_id", progress.ProgressID)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndWord(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.UserWordProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserWordProgress

	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB", "error", result.Error, "word_id", wordID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndWord: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserWordProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.UserWordProgress

	result := db.WithContext(ctx).Where("user_id = ?", userID).Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding progress by user in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindByUserAndWords(ctx context.Context, db *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID) ([]*model.UserWordProgress, error) {
	logger := middleware.GetLogger(ctx)
	progresses := []*model.UserWordProgress{}
	if len(wordIDs) == 0 {
		return progresses, nil
	}

	result := db.WithContext(ctx).Where("user_id = ? AND word_id IN ?", userID, wordIDs).Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding progress by words in DB", "error", result.Error, "count", len(wordIDs))
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndWords: %w", result.Error)
	}
	return progresses, nil
}

// CountRatedByStage はステージごとに星評価が minRating 以上の単語数を返します
func (r *gormProgressRepository) CountRatedByStage(ctx context.Context, db *gorm.DB, userID uuid.UUID, minRating int) ([]model.StageWordCount, error) {
	logger := middleware.GetLogger(ctx)
	var counts []model.StageWordCount

	result := db.WithContext(ctx).Model(&model.UserWordProgress{}).
		Select("words.stage_id AS stage_id, COUNT(*) AS total").
		Joins("JOIN words ON words.word_id = user_word_progress.word_id").
		Where("user_word_progress.user_id = ? AND user_word_progress.star_rating >= ?", userID, minRating).
		Group("words.stage_id").
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting rated words by stage in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgressRepository.CountRatedByStage: %w", result.Error)
	}
	return counts, nil
}

// CountRatings は進捗レコード数と、星4以上・星2以下の件数を返します
func (r *gormProgressRepository) CountRatings(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*RatingCounts, error) {
	logger := middleware.GetLogger(ctx)
	var counts RatingCounts

	result := db.WithContext(ctx).Model(&model.UserWordProgress{}).
		Select(
			"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN star_rating >= ? THEN 1 ELSE 0 END), 0) AS known, "+
				"COALESCE(SUM(CASE WHEN star_rating <= ? THEN 1 ELSE 0 END), 0) AS weak",
			4, 2,
		).
		Where("user_id = ?", userID).
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting ratings in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgressRepository.CountRatings: %w", result.Error)
	}
	return &counts, nil
}

// FindLastSeen は最後に触れた単語の進捗を単語・ステージつきで返します
func (r *gormProgressRepository) FindLastSeen(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserWordProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserWordProgress

	result := db.WithContext(ctx).
		Preload("Word.Stage").
		Where("user_id = ? AND last_seen_at IS NOT NULL", userID).
		Order("last_seen_at DESC").
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding last seen progress in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgressRepository.FindLastSeen: %w", result.Error)
	}
	return &progress, nil
}
