//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindByStage(ctx context.Context, db *gorm.DB, stageID uint) ([]*model.Word, error)
	FindByCriteria(ctx context.Context, db *gorm.DB, criteria model.FilterCriteria) ([]*model.Word, error)
	FindForLibrary(ctx context.Context, db *gorm.DB, filter model.LibraryFilter) ([]*model.Word, error)
	CountByStage(ctx context.Context, db *gorm.DB) ([]model.StageWordCount, error)
	FindTermsBeforeStage(ctx context.Context, db *gorm.DB, stageID uint) ([]string, error)
	CreateBatch(ctx context.Context, db *gorm.DB, words []*model.Word) error
	DeleteByStage(ctx context.Context, db *gorm.DB, stageID uint) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word

	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB", "error", result.Error, "word_id", wordID.String())
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindByStage はステージの単語を英単語順で返します
func (r *gormWordRepository) FindByStage(ctx context.Context, db *gorm.DB, stageID uint) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word

	result := db.WithContext(ctx).Where("stage_id = ?", stageID).Order("term ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by stage in DB", "error", result.Error, "stage_id", stageID)
		return nil, fmt.Errorf("gormWordRepository.FindByStage: %w", result.Error)
	}
	return words, nil
}

// FindByCriteria は出題元 (ステージ or 難易度) に一致する単語を返します。星評価の絞り込みは行いません
func (r *gormWordRepository) FindByCriteria(ctx context.Context, db *gorm.DB, criteria model.FilterCriteria) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word

	query := db.WithContext(ctx).Model(&model.Word{})
	switch criteria.Source {
	case model.WordSourceStages:
		if len(criteria.StageIDs) == 0 {
			return []*model.Word{}, nil
		}
		query = query.Where("stage_id IN ?", criteria.StageIDs)
	case model.WordSourceDifficulty:
		if len(criteria.DifficultyLevels) == 0 {
			return []*model.Word{}, nil
		}
		query = query.Where("difficulty_level IN ?", criteria.DifficultyLevels)
	default:
		return nil, fmt.Errorf("gormWordRepository.FindByCriteria: unknown source %q: %w", criteria.Source, model.ErrInvalidInput)
	}

	result := query.Order("term ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by criteria in DB", "error", result.Error, "source", criteria.Source)
		return nil, fmt.Errorf("gormWordRepository.FindByCriteria: %w", result.Error)
	}
	return words, nil
}

// FindForLibrary はステージ情報つきで単語を返します。星評価での絞り込みは呼び出し側で行います
func (r *gormWordRepository) FindForLibrary(ctx context.Context, db *gorm.DB, filter model.LibraryFilter) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word

	query := db.WithContext(ctx).Preload("Stage")
	if filter.StageID != nil {
		query = query.Where("stage_id = ?", *filter.StageID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty_level = ?", *filter.Difficulty)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(term) LIKE ? OR LOWER(translation) LIKE ?", like, like)
	}

	result := query.Order("stage_id ASC, term ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding library words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindForLibrary: %w", result.Error)
	}
	return words, nil
}

// CountByStage はステージごとの単語数を返します
func (r *gormWordRepository) CountByStage(ctx context.Context, db *gorm.DB) ([]model.StageWordCount, error) {
	logger := middleware.GetLogger(ctx)
	var counts []model.StageWordCount

	result := db.WithContext(ctx).Model(&model.Word{}).
		Select("stage_id, COUNT(*) AS total").
		Group("stage_id").
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting words by stage in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.CountByStage: %w", result.Error)
	}
	return counts, nil
}

// FindTermsBeforeStage は指定ステージより前のステージに登録済みの英単語を返します
func (r *gormWordRepository) FindTermsBeforeStage(ctx context.Context, db *gorm.DB, stageID uint) ([]string, error) {
	var terms []string
	result := db.WithContext(ctx).Model(&model.Word{}).Where("stage_id < ?", stageID).Pluck("term", &terms)
	if result.Error != nil {
		return nil, fmt.Errorf("gormWordRepository.FindTermsBeforeStage: %w", result.Error)
	}
	return terms, nil
}

func (r *gormWordRepository) CreateBatch(ctx context.Context, db *gorm.DB, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	result := db.WithContext(ctx).CreateInBatches(words, 200)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating words in DB", "error", result.Error, "count", len(words))
		return fmt.Errorf("gormWordRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

// DeleteByStage はステージの単語と、それに紐づく進捗・ラウンドを削除します。トランザクション内で呼び出してください
func (r *gormWordRepository) DeleteByStage(ctx context.Context, db *gorm.DB, stageID uint) (int64, error) {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)
	wordIDs := tx.Model(&model.Word{}).Select("word_id").Where("stage_id = ?", stageID)

	if err := tx.Where("word_id IN (?)", wordIDs).Delete(&model.TriviaRound{}).Error; err != nil {
		return 0, fmt.Errorf("gormWordRepository.DeleteByStage rounds: %w", err)
	}
	if err := tx.Where("word_id IN (?)", wordIDs).Delete(&model.UserWordProgress{}).Error; err != nil {
		return 0, fmt.Errorf("gormWordRepository.DeleteByStage progress: %w", err)
	}
	result := tx.Where("stage_id = ?", stageID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting words by stage in DB", "error", result.Error, "stage_id", stageID)
		return 0, fmt.Errorf("gormWordRepository.DeleteByStage: %w", result.Error)
	}
	return result.RowsAffected, nil
}
