package model

import (
	"time"

	"github.com/google/uuid"
)

// StatsSummary は学習状況の集計
type StatsSummary struct {
	TotalWords      int64 `json:"total_words"` // 進捗レコードのある単語数
	KnownWords      int64 `json:"known_words"` // 星4以上
	WeakWords       int64 `json:"weak_words"`  // 星2以下
	CompletedStages int   `json:"completed_stages"`
	CurrentStreak   int   `json:"current_streak"`
}

// StageProgressStat はステージ別の進捗率
type StageProgressStat struct {
	StageID  uint   `json:"stage_id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"` // 四捨五入したパーセント
}

// TriviaHistoryItem は終了済みゲームの記録
type TriviaHistoryItem struct {
	SessionID uuid.UUID `json:"session_id"`
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	Accuracy  float64   `json:"accuracy"`
}

// StatsResponse は統計画面のレスポンス
type StatsResponse struct {
	Summary       StatsSummary        `json:"summary"`
	StageProgress []StageProgressStat `json:"stage_progress"`
	TriviaHistory []TriviaHistoryItem `json:"trivia_history"`
}

// DashboardResponse はダッシュボードのレスポンス
type DashboardResponse struct {
	DisplayName     *string       `json:"display_name"`
	TotalWords      int64         `json:"total_words"`
	KnownWords      int64         `json:"known_words"`
	WeakWords       int64         `json:"weak_words"`
	CompletedStages int           `json:"completed_stages"`
	CurrentStreak   int           `json:"current_streak"`
	LastStage       *LibraryStage `json:"last_stage"`
}
