//go:generate mockery --name StageService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_vocab_trivia/internal/learning"
	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StageService interface {
	GetStages(ctx context.Context, userID uuid.UUID) ([]*model.StageSummaryResponse, error)
	GetStageDetail(ctx context.Context, userID uuid.UUID, stageID uint) (*model.StageDetailResponse, error)
}

type stageService struct {
	db        *gorm.DB
	stageRepo repository.StageRepository
	wordRepo  repository.WordRepository
	progRepo  repository.ProgressRepository
}

func NewStageService(db *gorm.DB, stageRepo repository.StageRepository, wordRepo repository.WordRepository, progRepo repository.ProgressRepository) StageService {
	return &stageService{
		db:        db,
		stageRepo: stageRepo,
		wordRepo:  wordRepo,
		progRepo:  progRepo,
	}
}

func countsByStage(counts []model.StageWordCount) map[uint]int64 {
	m := make(map[uint]int64, len(counts))
	for _, c := range counts {
		m[c.StageID] = c.Total
	}
	return m
}

// stageProgressList はステージ一覧と、丸める前の進捗率を表示順で返します
func stageProgressList(ctx context.Context, db *gorm.DB, stageRepo repository.StageRepository, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, userID uuid.UUID) ([]*model.StageSummaryResponse, []float64, error) {
	stages, err := stageRepo.FindAll(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	totals, err := wordRepo.CountByStage(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	mastered, err := progRepo.CountRatedByStage(ctx, db, userID, learning.MasteredRating)
	if err != nil {
		return nil, nil, err
	}
	totalMap := countsByStage(totals)
	masteredMap := countsByStage(mastered)

	summaries := make([]*model.StageSummaryResponse, 0, len(stages))
	progresses := make([]float64, 0, len(stages))
	for _, st := range stages {
		total := totalMap[st.StageID]
		rated := masteredMap[st.StageID]
		p := learning.StageProgress(rated, total)
		progresses = append(progresses, p)
		summaries = append(summaries, &model.StageSummaryResponse{
			StageID:         st.StageID,
			OrderIndex:      st.OrderIndex,
			Name:            st.Name,
			Description:     st.Description,
			DifficultyRange: st.DifficultyRange,
			Progress:        float64(learning.RoundedProgress(p)),
			TotalWords:      total,
			WordsWithRating: rated,
		})
	}
	for i, status := range learning.StageStatuses(progresses) {
		summaries[i].Status = status
	}
	return summaries, progresses, nil
}

// GetStages はステージごとの進捗と解放状況を返します
func (s *stageService) GetStages(ctx context.Context, userID uuid.UUID) ([]*model.StageSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	summaries, _, err := stageProgressList(ctx, s.db, s.stageRepo, s.wordRepo, s.progRepo, userID)
	if err != nil {
		logger.Error("Failed to aggregate stage progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステージ一覧の取得に失敗しました。", "", err)
	}
	logger.Info("Successfully retrieved stages", "count", len(summaries))
	return summaries, nil
}

// GetStageDetail はステージの単語を英単語順に、ユーザーの進捗つきで返します
func (s *stageService) GetStageDetail(ctx context.Context, userID uuid.UUID, stageID uint) (*model.StageDetailResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "stage_id", stageID)

	stage, err := s.stageRepo.FindByID(ctx, s.db, stageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STAGE_NOT_FOUND", "ステージが見つかりません。", "stage_id", model.ErrNotFound)
		}
		logger.Error("Failed to find stage", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステージの取得に失敗しました。", "", err)
	}

	words, err := s.wordRepo.FindByStage(ctx, s.db, stageID)
	if err != nil {
		logger.Error("Failed to find stage words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}

	progressByWord, err := s.progressMap(ctx, userID, words)
	if err != nil {
		logger.Error("Failed to find word progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
	}

	items := make([]*model.WordWithProgress, 0, len(words))
	for _, w := range words {
		items = append(items, wordWithProgress(w, progressByWord[w.WordID]))
	}

	return &model.StageDetailResponse{
		StageID:         stage.StageID,
		OrderIndex:      stage.OrderIndex,
		Name:            stage.Name,
		Description:     stage.Description,
		DifficultyRange: stage.DifficultyRange,
		Words:           items,
	}, nil
}

func (s *stageService) progressMap(ctx context.Context, userID uuid.UUID, words []*model.Word) (map[uuid.UUID]*model.UserWordProgress, error) {
	ids := make([]uuid.UUID, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.WordID)
	}
	progresses, err := s.progRepo.FindByUserAndWords(ctx, s.db, userID, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]*model.UserWordProgress, len(progresses))
	for _, p := range progresses {
		m[p.WordID] = p
	}
	return m, nil
}

func wordWithProgress(w *model.Word, p *model.UserWordProgress) *model.WordWithProgress {
	item := &model.WordWithProgress{
		WordID:          w.WordID,
		StageID:         w.StageID,
		Term:            w.Term,
		Translation:     w.Translation,
		ExampleSentence: w.ExampleSentence,
		DifficultyLevel: w.DifficultyLevel,
		Progress:        p.View(),
	}
	if w.Stage != nil {
		item.StageName = w.Stage.Name
	}
	return item
}
