//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_vocab_trivia/internal/learning"
	"go_vocab_trivia/internal/metrics"
	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/trivia"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ライブラリの星評価フィルタ
const (
	StarsWeak   = "weak"
	StarsMedium = "medium"
	StarsStrong = "strong"
)

type WordService interface {
	GetLibrary(ctx context.Context, userID uuid.UUID, filter model.LibraryFilter) (*model.LibraryResponse, error)
	UpdateWordProgress(ctx context.Context, userID, wordID uuid.UUID, req *model.UpdateWordProgressRequest) (*model.WordProgressView, error)
}

type wordService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo     repository.WordRepository
	stageRepo    repository.StageRepository
	progRepo     repository.ProgressRepository
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, stageRepo repository.StageRepository, progRepo repository.ProgressRepository, activityRepo repository.ActivityRepository) WordService {
	return &wordService{
		db:           db,
		wordRepo:     wordRepo,
		stageRepo:    stageRepo,
		progRepo:     progRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// starFilterOf はライブラリの stars パラメータをバケットに変換します。空なら全件です
func starFilterOf(stars string) (model.StarFilter, error) {
	switch stars {
	case "":
		return model.StarFilter{Weak: true, Medium: true, Strong: true}, nil
	case StarsWeak:
		return model.StarFilter{Weak: true}, nil
	case StarsMedium:
		return model.StarFilter{Medium: true}, nil
	case StarsStrong:
		return model.StarFilter{Strong: true}, nil
	}
	return model.StarFilter{}, model.NewAppError("VALIDATION_ERROR", "星評価の絞り込みは weak / medium / strong のいずれかです。", "stars", model.ErrInvalidInput)
}

// GetLibrary は全単語をステージ名と進捗つきで返します
func (s *wordService) GetLibrary(ctx context.Context, userID uuid.UUID, filter model.LibraryFilter) (*model.LibraryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	stars, err := starFilterOf(filter.Stars)
	if err != nil {
		return nil, err
	}

	words, err := s.wordRepo.FindForLibrary(ctx, s.db, filter)
	if err != nil {
		logger.Error("Failed to find library words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	progresses, err := s.progRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
	}
	stages, err := s.stageRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to find stages", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステージ一覧の取得に失敗しました。", "", err)
	}

	byWord := make(map[uuid.UUID]*model.UserWordProgress, len(progresses))
	for _, p := range progresses {
		byWord[p.WordID] = p
	}

	items := make([]*model.WordWithProgress, 0, len(words))
	for _, w := range words {
		p := byWord[w.WordID]
		rating := model.DefaultStarRating
		if p != nil {
			rating = p.StarRating
		}
		if !trivia.MatchesStars(stars, rating) {
			continue
		}
		items = append(items, wordWithProgress(w, p))
	}

	stageOptions := make([]model.LibraryStage, 0, len(stages))
	for _, st := range stages {
		stageOptions = append(stageOptions, model.LibraryStage{StageID: st.StageID, Name: st.Name})
	}

	logger.Info("Successfully retrieved library", "count", len(items))
	return &model.LibraryResponse{Words: items, Stages: stageOptions}, nil
}

// UpdateWordProgress は星評価とメモを手動で更新し、当日のアクティビティを記録します
func (s *wordService) UpdateWordProgress(ctx context.Context, userID, wordID uuid.UUID, req *model.UpdateWordProgressRequest) (*model.WordProgressView, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", wordID)

	if req.StarRating == nil && req.Notes == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "star_rating または notes のどちらかを指定してください。", "star_rating", model.ErrInvalidInput)
	}

	now := s.now()
	var progress *model.UserWordProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			logger.Error("Failed to find word", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
		}

		existing, err := s.progRepo.FindByUserAndWord(ctx, tx, userID, wordID)
		switch {
		case err == nil:
			learning.ApplyEdit(existing, req.StarRating, req.Notes, now)
			if err := s.progRepo.Update(ctx, tx, existing); err != nil {
				logger.Error("Failed to update progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
			}
			progress = existing
		case errors.Is(err, model.ErrNotFound):
			progress = learning.NewProgressFromEdit(userID, wordID, req.StarRating, req.Notes, now)
			if err := s.progRepo.Create(ctx, tx, progress); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("CONFLICT", "学習進捗が同時に更新されました。再度お試しください。", "", model.ErrConflict)
				}
				logger.Error("Failed to create progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の作成に失敗しました。", "", err)
			}
		default:
			logger.Error("Failed to find progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
		}

		inc := repository.ActivityIncrement{WordsInteracted: 1}
		if err := s.activityRepo.Upsert(ctx, tx, userID, learning.DayKey(now), inc); err != nil {
			logger.Error("Failed to record daily activity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アクティビティの記録に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ProgressUpdated()
	logger.Info("Word progress updated", "star_rating", progress.StarRating)
	return progress.View(), nil
}
