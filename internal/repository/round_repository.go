//go:generate mockery --name RoundRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoundRepository interface {
	Create(ctx context.Context, tx *gorm.DB, round *model.TriviaRound) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.TriviaRound, error)
}

type gormRoundRepository struct{}

func NewGormRoundRepository() RoundRepository {
	return &gormRoundRepository{}
}

// Create はラウンドを追記します。同じラウンド番号・同じ単語の重複は ErrConflict になります
func (r *gormRoundRepository) Create(ctx context.Context, tx *gorm.DB, round *model.TriviaRound) error {
	logger := middleware.GetLogger(ctx)
	if round.RoundID == uuid.Nil {
		round.RoundID = uuid.New()
	}

	result := tx.WithContext(ctx).Create(round)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate trivia round", "session_id", round.SessionID.String(), "round_number", round.RoundNumber)
			return model.ErrConflict
		}
		logger.Error("Error creating trivia round in DB", "error", result.Error)
		return fmt.Errorf("gormRoundRepository.Create: %w", result.Error)
	}
	return nil
}

// FindBySession はラウンド番号順に単語つきで返します
func (r *gormRoundRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.TriviaRound, error) {
	logger := middleware.GetLogger(ctx)
	var rounds []*model.TriviaRound

	result := db.WithContext(ctx).
		Preload("Word").
		Where("session_id = ?", sessionID).
		Order("round_number ASC").
		Find(&rounds)
	if result.Error != nil {
		logger.Error("Error finding trivia rounds in DB", "error", result.Error, "session_id", sessionID.String())
		return nil, fmt.Errorf("gormRoundRepository.FindBySession: %w", result.Error)
	}
	return rounds, nil
}
