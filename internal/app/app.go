// Package app はリポジトリ・サービス・ハンドラを組み立てます
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/handlers"
	"go_vocab_trivia/internal/locker"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/service"

	"gorm.io/gorm"
)

// NewLocker は設定に応じたセッションロックを返します。戻り値の関数で接続を閉じます
func NewLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (locker.Locker, func(), error) {
	switch strings.ToLower(cfg.Locker.Type) {
	case "", "memory":
		logger.Info("Using in-process session locker")
		return locker.NewMemoryLocker(), func() {}, nil
	case "redis":
		rdb, err := locker.NewRedisClient(ctx, locker.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Redis session locker", slog.String("addr", cfg.Redis.Addr))
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				logger.Error("Error closing Redis client", slog.Any("error", err))
			}
		}
		return locker.NewRedisLocker(rdb, logger), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unsupported locker type: %s", cfg.Locker.Type)
	}
}

// NewHandler は依存関係を注入したHTTPハンドラを返します
func NewHandler(cfg *config.Config, db *gorm.DB, lk locker.Locker, logger *slog.Logger) http.Handler {
	userRepo := repository.NewGormUserRepository()
	stageRepo := repository.NewGormStageRepository()
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	sessionRepo := repository.NewGormSessionRepository()
	roundRepo := repository.NewGormRoundRepository()
	activityRepo := repository.NewGormActivityRepository()

	authService := service.NewAuthService(db, userRepo, cfg)
	stageService := service.NewStageService(db, stageRepo, wordRepo, progressRepo)
	wordService := service.NewWordService(db, wordRepo, stageRepo, progressRepo, activityRepo)
	triviaService := service.NewTriviaService(db, service.TriviaRepositories{
		Word:     wordRepo,
		Progress: progressRepo,
		Session:  sessionRepo,
		Round:    roundRepo,
		Activity: activityRepo,
	}, lk, cfg.Trivia)
	statsService := service.NewStatsService(db, service.StatsRepositories{
		User:     userRepo,
		Stage:    stageRepo,
		Word:     wordRepo,
		Progress: progressRepo,
		Session:  sessionRepo,
		Activity: activityRepo,
	})

	return handlers.NewRouter(cfg, db, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(authService, cfg.Cookie, logger),
		Stage:  handlers.NewStageHandler(stageService, logger),
		Word:   handlers.NewWordHandler(wordService, logger),
		Trivia: handlers.NewTriviaHandler(triviaService, logger),
		Stats:  handlers.NewStatsHandler(statsService, logger),
	}, logger)
}
