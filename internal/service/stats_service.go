//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_vocab_trivia/internal/learning"
	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TriviaHistoryLimit は統計に載せる終了済みゲームの件数です
const TriviaHistoryLimit = 10

type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
}

// StatsRepositories は統計で使うリポジトリの組です
type StatsRepositories struct {
	User     repository.UserRepository
	Stage    repository.StageRepository
	Word     repository.WordRepository
	Progress repository.ProgressRepository
	Session  repository.SessionRepository
	Activity repository.ActivityRepository
}

type statsService struct {
	db    *gorm.DB
	repos StatsRepositories
	now   func() time.Time
}

func NewStatsService(db *gorm.DB, repos StatsRepositories) StatsService {
	return &statsService{db: db, repos: repos, now: time.Now}
}

// overview は統計とダッシュボードで共通の集計です
type overview struct {
	counts    *repository.RatingCounts
	stages    []*model.StageSummaryResponse
	completed int
	streak    int
}

func (s *statsService) loadOverview(ctx context.Context, userID uuid.UUID) (*overview, error) {
	counts, err := s.repos.Progress.CountRatings(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	stages, progresses, err := stageProgressList(ctx, s.db, s.repos.Stage, s.repos.Word, s.repos.Progress, userID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	days, err := s.repos.Activity.FindActiveDates(ctx, s.db, userID, learning.StreakSince(today))
	if err != nil {
		return nil, err
	}

	return &overview{
		counts:    counts,
		stages:    stages,
		completed: learning.CountCompleted(progresses),
		streak:    learning.CurrentStreak(days, today),
	}, nil
}

// GetStats は学習の集計、ステージ別進捗、直近のゲーム履歴を返します
func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	ov, err := s.loadOverview(ctx, userID)
	if err != nil {
		logger.Error("Failed to aggregate stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	sessions, err := s.repos.Session.FindRecentEnded(ctx, s.db, userID, TriviaHistoryLimit)
	if err != nil {
		logger.Error("Failed to find trivia history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ゲーム履歴の取得に失敗しました。", "", err)
	}

	stageProgress := make([]model.StageProgressStat, 0, len(ov.stages))
	for _, st := range ov.stages {
		stageProgress = append(stageProgress, model.StageProgressStat{
			StageID:  st.StageID,
			Name:     st.Name,
			Progress: int(st.Progress),
		})
	}

	// 新しい順に取得したものを古い順に並べ直す
	history := make([]model.TriviaHistoryItem, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		gs := sessions[i]
		item := model.TriviaHistoryItem{SessionID: gs.SessionID, Score: gs.Score}
		if gs.EndedAt != nil {
			item.Date = *gs.EndedAt
		}
		if gs.Accuracy != nil {
			item.Accuracy = *gs.Accuracy
		}
		history = append(history, item)
	}

	return &model.StatsResponse{
		Summary: model.StatsSummary{
			TotalWords:      ov.counts.Total,
			KnownWords:      ov.counts.Known,
			WeakWords:       ov.counts.Weak,
			CompletedStages: ov.completed,
			CurrentStreak:   ov.streak,
		},
		StageProgress: stageProgress,
		TriviaHistory: history,
	}, nil
}

// GetDashboard はホーム画面用の集計と、最後に学習したステージを返します
func (s *statsService) GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.repos.User.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	ov, err := s.loadOverview(ctx, userID)
	if err != nil {
		logger.Error("Failed to aggregate dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ダッシュボードの取得に失敗しました。", "", err)
	}

	resp := &model.DashboardResponse{
		DisplayName:     user.DisplayName,
		TotalWords:      ov.counts.Total,
		KnownWords:      ov.counts.Known,
		WeakWords:       ov.counts.Weak,
		CompletedStages: ov.completed,
		CurrentStreak:   ov.streak,
	}

	last, err := s.repos.Progress.FindLastSeen(ctx, s.db, userID)
	switch {
	case err == nil:
		if last.Word != nil && last.Word.Stage != nil {
			resp.LastStage = &model.LibraryStage{StageID: last.Word.Stage.StageID, Name: last.Word.Stage.Name}
		}
	case errors.Is(err, model.ErrNotFound):
	default:
		logger.Error("Failed to find last seen word", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ダッシュボードの取得に失敗しました。", "", err)
	}

	return resp, nil
}
