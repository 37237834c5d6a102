// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word はカタログの単語です。シードでのみ作成されます
type Word struct {
	WordID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	StageID         uint      `gorm:"not null;uniqueIndex:idx_stage_term" json:"stage_id"`
	Term            string    `gorm:"not null;uniqueIndex:idx_stage_term" json:"term"`
	Translation     string    `gorm:"not null" json:"translation"`
	ExampleSentence *string   `json:"example_sentence,omitempty"`
	DifficultyLevel int       `gorm:"not null;index" json:"difficulty_level"` // 1〜3
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	// 関連 (Preload用)
	Stage *Stage `gorm:"foreignKey:StageID;references:StageID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// WordProgressView は単語に紐づくユーザーの進捗 (未作成ならnil)
type WordProgressView struct {
	StarRating int        `json:"star_rating"`
	Notes      string     `json:"notes"`
	LastSeenAt *time.Time `json:"last_seen_at"`
}

// WordWithProgress は単語とユーザー進捗をまとめたレスポンス要素
type WordWithProgress struct {
	WordID          uuid.UUID         `json:"word_id"`
	StageID         uint              `json:"stage_id"`
	StageName       string            `json:"stage_name,omitempty"`
	Term            string            `json:"term"`
	Translation     string            `json:"translation"`
	ExampleSentence *string           `json:"example_sentence,omitempty"`
	DifficultyLevel int               `json:"difficulty_level"`
	Progress        *WordProgressView `json:"progress"`
}

// LibraryFilter はライブラリ一覧の絞り込み条件
type LibraryFilter struct {
	StageID    *uint
	Difficulty *int
	Stars      string // weak / medium / strong
	Query      string
}

// LibraryStage はライブラリのステージ選択肢
type LibraryStage struct {
	StageID uint   `json:"stage_id"`
	Name    string `json:"name"`
}

// LibraryResponse はライブラリAPIのレスポンス
type LibraryResponse struct {
	Words  []*WordWithProgress `json:"words"`
	Stages []LibraryStage      `json:"stages"`
}
