// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-trivia"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "postgres"
	DefaultAuthEnabled    = true
	DefaultAccessTokenTTL = 7 * 24 * time.Hour // セッションは7日間
	DefaultCookieName     = "session_token"
	DefaultLockTimeout    = 5 * time.Second
	DefaultLockerType     = "memory"
	DefaultRedisPoolSize  = 10
	DefaultMetricsPath    = "/metrics"
)
