//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.TriviaGameSession) error
	FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.TriviaGameSession, error)
	Update(ctx context.Context, tx *gorm.DB, session *model.TriviaGameSession) error
	FindRecentEnded(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TriviaGameSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.TriviaGameSession) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating trivia session in DB", "error", result.Error)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByID は所有者が一致するセッションのみ返します。他人のセッションは NotFound 扱いです
func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.TriviaGameSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.TriviaGameSession

	result := db.WithContext(ctx).Where("session_id = ? AND user_id = ?", sessionID, userID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding trivia session in DB", "error", result.Error, "session_id", sessionID.String())
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

// Update はセッションの可変項目を保存します。終了済みのセッションは更新しません
func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, session *model.TriviaGameSession) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(session).
		Where("ended_at IS NULL").
		Select("lives_used", "score", "ended_at", "accuracy", "pending_word_id", "pending_options", "pending_correct_index", "updated_at").
		Updates(session)
	if result.Error != nil {
		logger.Error("Error updating trivia session in DB", "error", result.Error, "session_id", session.SessionID.String())
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Trivia session already ended or missing", "session_id", session.SessionID.String())
		return model.ErrConflict
	}
	return nil
}

// FindRecentEnded は終了済みセッションを新しい順に limit 件返します
func (r *gormSessionRepository) FindRecentEnded(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TriviaGameSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.TriviaGameSession

	result := db.WithContext(ctx).
		Where("user_id = ? AND ended_at IS NOT NULL", userID).
		Order("ended_at DESC").
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding ended trivia sessions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSessionRepository.FindRecentEnded: %w", result.Error)
	}
	return sessions, nil
}
