// Package learning は星評価の更新、ステージ解放、連続学習日数のルールです。
package learning

import (
	"time"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
)

// 評価3以上の単語は2回連続正解で1段階上がる
const promoteStreak = 2

// ClampRating は星評価を1〜5に収めます
func ClampRating(rating int) int {
	return min(model.MaxStarRating, max(model.MinStarRating, rating))
}

func answerResult(correct bool) *string {
	r := model.AnswerResultIncorrect
	if correct {
		r = model.AnswerResultCorrect
	}
	return &r
}

// NewProgressFromAnswer は初回回答から進捗を作ります。正解なら星3、不正解なら星2です
func NewProgressFromAnswer(userID, wordID uuid.UUID, correct bool, now time.Time) *model.UserWordProgress {
	p := &model.UserWordProgress{
		ProgressID:       uuid.New(),
		UserID:           userID,
		WordID:           wordID,
		StarRating:       2,
		IncorrectCount:   1,
		LastAnswerResult: answerResult(correct),
		LastSeenAt:       &now,
	}
	if correct {
		p.StarRating = 3
		p.CorrectCount = 1
		p.IncorrectCount = 0
		p.CorrectStreak = 1
	}
	return p
}

// ApplyAnswer は既存の進捗に回答結果を反映します。
// 正解: 星2以下は即+1、星3以上は2連続正解で+1して連続数をリセット。
// 不正解: 連続数をリセットし、星3以上なら-1。
func ApplyAnswer(p *model.UserWordProgress, correct bool, now time.Time) {
	if correct {
		p.CorrectCount++
		p.CorrectStreak++
		switch {
		case p.StarRating <= 2:
			p.StarRating = ClampRating(p.StarRating + 1)
		case p.CorrectStreak >= promoteStreak:
			p.StarRating = ClampRating(p.StarRating + 1)
			p.CorrectStreak = 0
		}
	} else {
		p.IncorrectCount++
		p.CorrectStreak = 0
		if p.StarRating >= 3 {
			p.StarRating = ClampRating(p.StarRating - 1)
		}
	}
	p.StarRating = ClampRating(p.StarRating)
	p.LastAnswerResult = answerResult(correct)
	p.LastSeenAt = &now
}

// NewProgressFromEdit は手動編集で作られる進捗です。評価は指定が無ければ星1、メモは空です
func NewProgressFromEdit(userID, wordID uuid.UUID, rating *int, notes *string, now time.Time) *model.UserWordProgress {
	p := &model.UserWordProgress{
		ProgressID: uuid.New(),
		UserID:     userID,
		WordID:     wordID,
		StarRating: model.DefaultStarRating,
		LastSeenAt: &now,
	}
	ApplyEdit(p, rating, notes, now)
	return p
}

// ApplyEdit は手動の評価・メモ変更を反映します。評価は1〜5に丸めます
func ApplyEdit(p *model.UserWordProgress, rating *int, notes *string, now time.Time) {
	if rating != nil {
		p.StarRating = ClampRating(*rating)
	}
	if notes != nil {
		p.Notes = *notes
	}
	p.LastSeenAt = &now
}
