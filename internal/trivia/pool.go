// Package trivia はトリビアゲームの出題・採点・終了判定のルールです。
// DBには触れず、呼び出し側が読み込んだ状態に対して計算だけを行います。
package trivia

import (
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
)

// MinPoolSize はセッション作成に必要な候補単語数です (1ゲーム15ラウンド、重複なし)
const MinPoolSize = model.TriviaRoundsPerGame

// MatchesStars は星評価がバケット絞り込みに含まれるかを返します
func MatchesStars(f model.StarFilter, rating int) bool {
	switch {
	case rating <= 2:
		return f.Weak
	case rating == 3:
		return f.Medium
	default:
		return f.Strong
	}
}

// RatingOf は進捗が無い単語を星1として評価を返します
func RatingOf(ratings map[uuid.UUID]int, wordID uuid.UUID) int {
	if r, ok := ratings[wordID]; ok {
		return r
	}
	return model.DefaultStarRating
}

// EligibleWords は出題元で取得済みの単語を星評価バケットで絞り込みます
func EligibleWords(words []*model.Word, ratings map[uuid.UUID]int, stars model.StarFilter) []*model.Word {
	eligible := make([]*model.Word, 0, len(words))
	for _, w := range words {
		if MatchesStars(stars, RatingOf(ratings, w.WordID)) {
			eligible = append(eligible, w)
		}
	}
	return eligible
}

// HasEnoughWords はセッションを開始できる候補数かを返します
func HasEnoughWords(count int) bool {
	return count >= MinPoolSize
}
