//go:generate mockery --name ActivityRepository --output ./mocks --outpkg mocks --case=underscore
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

// ActivityIncrement は日別アクティビティに加算する値です
type ActivityIncrement struct {
	TriviaGames     int
	WordsInteracted int
}

type ActivityRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string, inc ActivityIncrement) error
	FindByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) (*model.UserDailyActivity, error)
	FindActiveDates(ctx context.Context, db *gorm.DB, userID uuid.UUID, since string) ([]string, error)
}

type gormActivityRepository struct{}

func NewGormActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

// Upsert はその日のレコードを作成、または件数を加算します。トランザクション内で呼び出してください
func (r *gormActivityRepository) Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string, inc ActivityIncrement) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "date", date)

	activity, err := r.FindByUserAndDate(ctx, tx, userID, date)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	if errors.Is(err, model.ErrNotFound) {
		activity = &model.UserDailyActivity{
			ActivityID:           uuid.New(),
			UserID:               userID,
			ActivityDate:         date,
			IsActive:             true,
			TriviaGamesCount:     inc.TriviaGames,
			WordsInteractedCount: inc.WordsInteracted,
		}
		// セーブポイント内で作成し、一意制約違反なら外側のトランザクションを継続できるようにする
		createErr := tx.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
			return inner.Create(activity).Error
		})
		if createErr == nil {
			return nil
		}
		if !isUniqueViolation(createErr) {
			logger.Error("Error creating daily activity in DB", "error", createErr)
			return fmt.Errorf("gormActivityRepository.Upsert: %w", createErr)
		}
		// 同時に作成された場合は加算にフォールバック
		logger.Debug("Daily activity created concurrently, falling back to increment")
	}

	result := tx.WithContext(ctx).Model(&model.UserDailyActivity{}).
		Where("user_id = ? AND activity_date = ?", userID, date).
		Updates(map[string]interface{}{
			"is_active":              true,
			"trivia_games_count":     gorm.Expr("trivia_games_count + ?", inc.TriviaGames),
			"words_interacted_count": gorm.Expr("words_interacted_count + ?", inc.WordsInteracted),
		})
	if result.Error != nil {
		logger.Error("Error updating daily activity in DB", "error", result.Error)
		return fmt.Errorf("gormActivityRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormActivityRepository) FindByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) (*model.UserDailyActivity, error) {
	var activity model.UserDailyActivity

	result := db.WithContext(ctx).Where("user_id = ? AND activity_date = ?", userID, date).First(&activity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormActivityRepository.FindByUserAndDate: %w", result.Error)
	}
	return &activity, nil
}

// FindActiveDates は since 以降のアクティブな日付を新しい順に返します
func (r *gormActivityRepository) FindActiveDates(ctx context.Context, db *gorm.DB, userID uuid.UUID, since string) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var dates []string

	result := db.WithContext(ctx).Model(&model.UserDailyActivity{}).
		Where("user_id = ? AND is_active = ? AND activity_date >= ?", userID, true, since).
		Order("activity_date DESC").
		Pluck("activity_date", &dates)
	if result.Error != nil {
		logger.Error("Error finding active dates in DB", "error", result.Error)
		return nil, fmt.Errorf("gormActivityRepository.FindActiveDates: %w", result.Error)
	}
	return dates, nil
}
