// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"go_vocab_trivia/internal/catalog"
	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/repository"
)

func main() {
	configDir := flag.String("config", "../configs", "config.yaml のあるディレクトリ")
	dir := flag.String("dir", "data/words", "stageN.json / stageN.xlsx / stageN.csv を置いたディレクトリ")
	from := flag.Uint("from", 1, "投入を開始するステージ番号")
	to := flag.Uint("to", catalog.DefaultStageCount, "投入を終了するステージ番号")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := repository.Migrate(db); err != nil {
		logger.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	seeder := catalog.NewSeeder(db, repository.NewGormStageRepository(), repository.NewGormWordRepository(), logger)
	reports, err := seeder.Seed(context.Background(), *dir, *from, *to)
	if err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	total := 0
	for _, r := range reports {
		total += r.Inserted
	}
	logger.Info("Seed completed", slog.Int("stages", len(reports)), slog.Int("words", total))
}
