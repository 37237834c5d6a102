// internal/model/stage.go
package model

import (
	"time"
)

// ステージのステータス
const (
	StageStatusLocked     = "locked"
	StageStatusInProgress = "in_progress"
	StageStatusCompleted  = "completed"
)

// Stage は学習順に並んだ単語グループです
type Stage struct {
	StageID         uint      `gorm:"primaryKey;autoIncrement:false" json:"stage_id"`
	OrderIndex      int       `gorm:"not null;uniqueIndex" json:"order_index"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	DifficultyRange string    `gorm:"type:varchar(16)" json:"difficulty_range"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	Words []Word `gorm:"foreignKey:StageID;references:StageID" json:"-"`
}

func (Stage) TableName() string {
	return "stages"
}

// StageWordCount はステージ単位の集計行です
type StageWordCount struct {
	StageID uint
	Total   int64
}

// StageSummaryResponse はステージ一覧の1要素
type StageSummaryResponse struct {
	StageID         uint    `json:"stage_id"`
	OrderIndex      int     `json:"order_index"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DifficultyRange string  `json:"difficulty_range"`
	Progress        float64 `json:"progress"`
	Status          string  `json:"status"`
	TotalWords      int64   `json:"total_words"`
	WordsWithRating int64   `json:"words_with_rating"`
}

// StageDetailResponse はステージ詳細 (単語一覧つき)
type StageDetailResponse struct {
	StageID         uint                `json:"stage_id"`
	OrderIndex      int                 `json:"order_index"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	DifficultyRange string              `json:"difficulty_range"`
	Words           []*WordWithProgress `json:"words"`
}
