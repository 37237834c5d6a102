// internal/model/trivia.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// トリビアの定数
const (
	TriviaRoundsPerGame = 15
	TriviaOptionCount   = 4
	UnlimitedLives      = 999 // ライフ無制限を表す値
	TimedOutIndex       = -1  // 時間切れで未回答
)

// 単語の出題元
const (
	WordSourceStages     = "stages"
	WordSourceDifficulty = "difficulty"
)

// フィードバック言語
const (
	FeedbackLanguageHebrew  = "he"
	FeedbackLanguageEnglish = "en"
)

// StarFilter は星評価バケットの絞り込み (weak: 1-2, medium: 3, strong: 4-5)
type StarFilter struct {
	Weak   bool `json:"weak"`
	Medium bool `json:"medium"`
	Strong bool `json:"strong"`
}

// Any はいずれかのバケットが有効かを返します
func (f StarFilter) Any() bool {
	return f.Weak || f.Medium || f.Strong
}

// FilterCriteria はセッションの出題条件です。DBにはJSONで保存されます
type FilterCriteria struct {
	Source           string     `json:"source"`
	StageIDs         []uint     `json:"stage_ids,omitempty"`
	DifficultyLevels []int      `json:"difficulty_levels,omitempty"`
	Stars            StarFilter `json:"stars"`
}

// Validate は出題元とバケットの組み合わせを検証します
func (c FilterCriteria) Validate() error {
	switch c.Source {
	case WordSourceStages:
		if len(c.StageIDs) == 0 {
			return NewAppError("VALIDATION_ERROR", "ステージを1つ以上選択してください。", "stage_ids", ErrInvalidInput)
		}
	case WordSourceDifficulty:
		if len(c.DifficultyLevels) == 0 {
			return NewAppError("VALIDATION_ERROR", "難易度を1つ以上選択してください。", "difficulty_levels", ErrInvalidInput)
		}
		for _, lv := range c.DifficultyLevels {
			if lv < 1 || lv > 3 {
				return NewAppError("VALIDATION_ERROR", "難易度は1〜3で指定してください。", "difficulty_levels", ErrInvalidInput)
			}
		}
	default:
		return NewAppError("VALIDATION_ERROR", "出題元が不正です。", "word_source", ErrInvalidInput)
	}
	if !c.Stars.Any() {
		return NewAppError("VALIDATION_ERROR", "星評価の絞り込みを1つ以上選択してください。", "star_filter", ErrInvalidInput)
	}
	return nil
}

// TriviaGameSession は1回分のトリビアゲームです
type TriviaGameSession struct {
	SessionID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	LivesConfigured  int            `gorm:"not null"`
	LivesUsed        int            `gorm:"not null"`
	Score            int            `gorm:"not null"`
	Filters          FilterCriteria `gorm:"type:text;serializer:json;not null"`
	FeedbackLanguage string         `gorm:"type:varchar(8);not null"`
	EndedAt          *time.Time     `gorm:"index"`
	Accuracy         *float64

	// 出題済み・未回答のラウンド (回答時にサーバー側で照合する)
	PendingWordID       *uuid.UUID `gorm:"type:uuid"`
	PendingOptions      []string   `gorm:"type:text;serializer:json"`
	PendingCorrectIndex *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TriviaGameSession) TableName() string {
	return "trivia_game_sessions"
}

// IsEnded はセッションが終了済みかを返します
func (s *TriviaGameSession) IsEnded() bool {
	return s.EndedAt != nil
}

// ClearPending は出題中のラウンドを破棄します
func (s *TriviaGameSession) ClearPending() {
	s.PendingWordID = nil
	s.PendingOptions = nil
	s.PendingCorrectIndex = nil
}

// TriviaRound は回答済みの1ラウンドです (追記のみ)
type TriviaRound struct {
	RoundID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_round;uniqueIndex:idx_session_word"`
	RoundNumber         int       `gorm:"not null;uniqueIndex:idx_session_round"`
	WordID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_word"`
	IsCorrect           bool      `gorm:"not null"`
	TimeTakenSeconds    int       `gorm:"not null"`
	SelectedOptionIndex int       `gorm:"not null"`
	CorrectOptionIndex  int       `gorm:"not null"`
	CreatedAt           time.Time

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID"`
}

func (TriviaRound) TableName() string {
	return "trivia_rounds"
}

// TriviaFilterRequest は出題条件のリクエスト部分です
type TriviaFilterRequest struct {
	WordSource       string     `json:"word_source" validate:"required,oneof=stages difficulty"`
	StageIDs         []uint     `json:"stage_ids" validate:"omitempty,dive,min=1"`
	DifficultyLevels []int      `json:"difficulty_levels" validate:"omitempty,dive,min=1,max=3"`
	StarFilter       StarFilter `json:"star_filter"`
}

// Criteria はリクエストを出題条件に変換します。選択されていない側のIDは捨てます
func (r TriviaFilterRequest) Criteria() FilterCriteria {
	c := FilterCriteria{Source: r.WordSource, Stars: r.StarFilter}
	switch r.WordSource {
	case WordSourceStages:
		c.StageIDs = r.StageIDs
	case WordSourceDifficulty:
		c.DifficultyLevels = r.DifficultyLevels
	}
	return c
}

// CreateSessionRequest はセッション作成リクエスト
type CreateSessionRequest struct {
	TriviaFilterRequest
	Lives            int    `json:"lives" validate:"required,min=1,max=999"`
	FeedbackLanguage string `json:"feedback_language" validate:"omitempty,oneof=he en"`
}

// EstimatePoolResponse は出題候補数
type EstimatePoolResponse struct {
	Count int `json:"count"`
}

// CreateSessionResponse はセッション作成結果
type CreateSessionResponse struct {
	SessionID        uuid.UUID `json:"session_id"`
	Lives            int       `json:"lives"`
	FeedbackLanguage string    `json:"feedback_language"`
	PoolSize         int       `json:"pool_size"`
}

// RoundWord は出題単語 (訳は伏せる)
type RoundWord struct {
	WordID          uuid.UUID `json:"word_id"`
	Term            string    `json:"term"`
	ExampleSentence *string   `json:"example_sentence,omitempty"`
}

// RoundResponse は次ラウンド、またはゲーム終了の通知です
type RoundResponse struct {
	GameCompleted  bool       `json:"game_completed"`
	RoundNumber    int        `json:"round_number,omitempty"`
	TotalRounds    int        `json:"total_rounds,omitempty"`
	Word           *RoundWord `json:"word,omitempty"`
	Options        []string   `json:"options,omitempty"`
	CorrectIndex   *int       `json:"correct_index,omitempty"` // 設定で公開した場合のみ
	Score          int        `json:"score"`
	LivesRemaining int        `json:"lives_remaining"`
}

// SubmitAnswerRequest は回答送信リクエスト。correct_index は受け付けるが判定には使いません
type SubmitAnswerRequest struct {
	WordID           uuid.UUID `json:"word_id" validate:"required"`
	SelectedIndex    *int      `json:"selected_index" validate:"required,min=-1,max=3"`
	CorrectIndex     *int      `json:"correct_index,omitempty"`
	TimeTakenSeconds int       `json:"time_taken_seconds" validate:"min=0,max=3600"`
}

// SubmitAnswerResponse は回答結果
type SubmitAnswerResponse struct {
	IsCorrect      bool   `json:"is_correct"`
	ScoreChange    int    `json:"score_change"`
	NewScore       int    `json:"new_score"`
	LivesRemaining int    `json:"lives_remaining"`
	GameEnded      bool   `json:"game_ended"`
	CorrectIndex   int    `json:"correct_index"`
	CorrectAnswer  string `json:"correct_answer"`
	RoundNumber    int    `json:"round_number"`
}

// SummaryWord はサマリーに載せる単語
type SummaryWord struct {
	WordID      uuid.UUID `json:"word_id"`
	Term        string    `json:"term"`
	Translation string    `json:"translation"`
	StageID     uint      `json:"stage_id"`
}

// GameSummaryResponse はゲーム結果のサマリー
type GameSummaryResponse struct {
	SessionID      uuid.UUID     `json:"session_id"`
	Score          int           `json:"score"`
	Accuracy       float64       `json:"accuracy"`
	RoundsPlayed   int           `json:"rounds_played"`
	LivesRemaining int           `json:"lives_remaining"`
	LongestStreak  int           `json:"longest_streak"`
	Ended          bool          `json:"ended"`
	IncorrectWords []SummaryWord `json:"incorrect_words"`
	ImprovedWords  []SummaryWord `json:"improved_words"`
}
