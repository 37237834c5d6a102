package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go_vocab_trivia/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: ":9090"
database:
  driver: sqlite
  url: "file:test.db"
jwt:
  secret_key: "from-file"
  access_token_ttl: 2h
trivia:
  reveal_correct_index: true
  lock_timeout: 1500ms
locker:
  type: redis
redis:
  addr: "redis:6379"
cors:
  allowed_origins: ["http://example.com"]
`

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o644))

	require.NoError(t, config.LoadConfig(dir))
	cfg := config.Cfg

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.True(t, cfg.Trivia.RevealCorrectIndex)
	assert.Equal(t, 1500*time.Millisecond, cfg.Trivia.LockTimeout)
	assert.Equal(t, "redis", cfg.Locker.Type)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://example.com"}, cfg.CORS.AllowedOrigins)

	// 未設定の項目はデフォルト値
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultCookieName, cfg.Cookie.Name)
	assert.Equal(t, config.DefaultRedisPoolSize, cfg.Redis.PoolSize)
	assert.Equal(t, config.DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, config.AppName, cfg.App.Name)
	assert.Equal(t, config.DefaultAuthEnabled, cfg.Auth.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o644))

	t.Setenv("APP_SERVER_PORT", ":7070")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET_KEY", "from-env")
	t.Setenv("AUTH_ENABLED", "false")

	require.NoError(t, config.LoadConfig(dir))
	cfg := config.Cfg

	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, "postgres://env/db", cfg.Database.URL)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	require.NoError(t, config.LoadConfig(t.TempDir()))
	cfg := config.Cfg

	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, config.DefaultAccessTokenTTL, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, config.DefaultLockTimeout, cfg.Trivia.LockTimeout)
	assert.Equal(t, config.DefaultLockerType, cfg.Locker.Type)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o644))
	assert.Error(t, config.LoadConfig(dir))
}
