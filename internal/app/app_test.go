package app_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"go_vocab_trivia/internal/app"
	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/locker"
	"go_vocab_trivia/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameFlow_SQLite(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := flowConfig()
	lk, closeLocker, err := app.NewLocker(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(closeLocker)

	server := httptest.NewServer(app.NewHandler(cfg, db, lk, logger))
	t.Cleanup(server.Close)

	runGameFlow(t, server, db)
}

func TestNewLocker(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("正常系: memory", func(t *testing.T) {
		lk, closeFn, err := app.NewLocker(context.Background(), &config.Config{Locker: config.LockerConfig{Type: "memory"}}, logger)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &locker.MemoryLocker{}, lk)
	})

	t.Run("異常系: 未対応の種類", func(t *testing.T) {
		_, _, err := app.NewLocker(context.Background(), &config.Config{Locker: config.LockerConfig{Type: "etcd"}}, logger)
		assert.Error(t, err)
	})
}
