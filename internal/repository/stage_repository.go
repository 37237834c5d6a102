//go:generate mockery --name StageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StageRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Stage, error)
	FindByID(ctx context.Context, db *gorm.DB, stageID uint) (*model.Stage, error)
	Upsert(ctx context.Context, db *gorm.DB, stage *model.Stage) error
}

type gormStageRepository struct{}

func NewGormStageRepository() StageRepository {
	return &gormStageRepository{}
}

// FindAll は表示順で全ステージを返します
func (r *gormStageRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Stage, error) {
	logger := middleware.GetLogger(ctx)
	var stages []*model.Stage

	result := db.WithContext(ctx).Order("order_index ASC").Find(&stages)
	if result.Error != nil {
		logger.Error("Error finding stages in DB", "error", result.Error)
		return nil, fmt.Errorf("gormStageRepository.FindAll: %w", result.Error)
	}
	return stages, nil
}

func (r *gormStageRepository) FindByID(ctx context.Context, db *gorm.DB, stageID uint) (*model.Stage, error) {
	logger := middleware.GetLogger(ctx)
	var stage model.Stage

	result := db.WithContext(ctx).Where("stage_id = ?", stageID).First(&stage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding stage by ID in DB", "error", result.Error, "stage_id", stageID)
		return nil, fmt.Errorf("gormStageRepository.FindByID: %w", result.Error)
	}
	return &stage, nil
}

// Upsert はステージIDをキーに作成または更新します
func (r *gormStageRepository) Upsert(ctx context.Context, db *gorm.DB, stage *model.Stage) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stage_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_index", "name", "description", "difficulty_range", "updated_at"}),
	}).Create(stage)
	if result.Error != nil {
		logger.Error("Error upserting stage in DB", "error", result.Error, "stage_id", stage.StageID)
		return fmt.Errorf("gormStageRepository.Upsert: %w", result.Error)
	}
	return nil
}
