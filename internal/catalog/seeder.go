package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageReport は1ステージ分の投入結果です
type StageReport struct {
	StageID  uint
	File     string
	Loaded   int   // ファイルの行数
	Inserted int   // 重複除去後に登録した数
	Removed  int64 // 再投入で削除した既存単語数
}

type Seeder struct {
	db        *gorm.DB
	stageRepo repository.StageRepository
	wordRepo  repository.WordRepository
	logger    *slog.Logger
}

func NewSeeder(db *gorm.DB, stageRepo repository.StageRepository, wordRepo repository.WordRepository, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, stageRepo: stageRepo, wordRepo: wordRepo, logger: logger}
}

// Seed は from〜to のステージを投入します。各ステージは1トランザクションで、
// 既存の単語 (と進捗・ラウンド) を削除してからファイルの単語を登録します。
// from より前のステージにある単語はスキップされます
func (s *Seeder) Seed(ctx context.Context, dir string, from, to uint) ([]StageReport, error) {
	if from == 0 || to < from {
		return nil, fmt.Errorf("invalid stage range: %d-%d", from, to)
	}
	ctx = middleware.WithLogger(ctx, s.logger)

	lowerTerms, err := s.wordRepo.FindTermsBeforeStage(ctx, s.db, from)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(lowerTerms))
	for _, t := range lowerTerms {
		seen[termKey(t)] = struct{}{}
	}

	reports := make([]StageReport, 0, to-from+1)
	for stageNum := from; stageNum <= to; stageNum++ {
		report, err := s.seedStage(ctx, dir, stageNum, seen)
		if err != nil {
			return reports, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (s *Seeder) seedStage(ctx context.Context, dir string, stageNum uint, seen map[string]struct{}) (*StageReport, error) {
	logger := s.logger.With(slog.Uint64("stage_id", uint64(stageNum)))
	report := &StageReport{StageID: stageNum}

	entries, path, err := LoadStage(dir, stageNum)
	switch {
	case errors.Is(err, ErrStageFileNotFound):
		logger.Warn("No word file for stage")
	case err != nil:
		return nil, fmt.Errorf("stage %d: %w", stageNum, err)
	}
	report.File = path
	report.Loaded = len(entries)

	unique := Dedupe(entries, seen)
	difficulty := DifficultyFor(stageNum)
	words := make([]*model.Word, 0, len(unique))
	for _, e := range unique {
		words = append(words, &model.Word{
			WordID:          uuid.New(),
			StageID:         stageNum,
			Term:            e.Term,
			Translation:     e.Translation,
			ExampleSentence: e.ExampleSentence,
			DifficultyLevel: difficulty,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.stageRepo.Upsert(ctx, tx, StageFor(stageNum)); err != nil {
			return err
		}
		removed, err := s.wordRepo.DeleteByStage(ctx, tx, stageNum)
		if err != nil {
			return err
		}
		report.Removed = removed
		return s.wordRepo.CreateBatch(ctx, tx, words)
	})
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageNum, err)
	}
	report.Inserted = len(words)

	logger.Info("Stage seeded",
		slog.String("file", path),
		slog.Int("loaded", report.Loaded),
		slog.Int("inserted", report.Inserted),
		slog.Int64("removed", report.Removed),
	)
	return report, nil
}
