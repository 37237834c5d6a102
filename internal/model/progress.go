// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 星評価の範囲
const (
	MinStarRating     = 1
	MaxStarRating     = 5
	DefaultStarRating = 1 // 進捗レコードが無い単語の暗黙値
)

// 直近の回答結果
const (
	AnswerResultCorrect   = "correct"
	AnswerResultIncorrect = "incorrect"
)

// UserWordProgress はユーザー×単語ごとの習熟度です
type UserWordProgress struct {
	ProgressID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_word,unique"` // 複合ユニークインデックスの一部
	WordID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_word,unique"` // 複合ユニークインデックスの一部
	StarRating       int        `gorm:"not null"`
	CorrectCount     int        `gorm:"not null"`
	IncorrectCount   int        `gorm:"not null"`
	CorrectStreak    int        `gorm:"not null"` // 単語単位の連続正解数
	LastAnswerResult *string    `gorm:"type:varchar(16)"`
	Notes            string     `gorm:"type:text;not null"`
	LastSeenAt       *time.Time `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (UserWordProgress) TableName() string {
	return "user_word_progress"
}

// View はレスポンス用の進捗表現を返します
func (p *UserWordProgress) View() *WordProgressView {
	if p == nil {
		return nil
	}
	return &WordProgressView{
		StarRating: p.StarRating,
		Notes:      p.Notes,
		LastSeenAt: p.LastSeenAt,
	}
}

// UpdateWordProgressRequest は星評価・メモ更新のリクエスト
type UpdateWordProgressRequest struct {
	StarRating *int    `json:"star_rating,omitempty"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
