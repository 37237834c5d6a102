package trivia

import (
	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
)

// MaxImprovedWords はサマリーに載せる「伸びた単語」の上限です
const MaxImprovedWords = 10

// ImprovedRatingThreshold 以上の評価になった正解単語を「伸びた単語」とみなします
const ImprovedRatingThreshold = 3

// CountCorrect は正解ラウンド数を返します
func CountCorrect(rounds []*model.TriviaRound) int {
	n := 0
	for _, r := range rounds {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// LongestStreak はラウンド番号順に並んだラウンドの最長連続正解数を返します
func LongestStreak(rounds []*model.TriviaRound) int {
	longest, current := 0, 0
	for _, r := range rounds {
		if r.IsCorrect {
			current++
			longest = max(longest, current)
			continue
		}
		current = 0
	}
	return longest
}

// LastRoundCorrect は直前のラウンドが正解だったかを返します
func LastRoundCorrect(rounds []*model.TriviaRound) bool {
	if len(rounds) == 0 {
		return false
	}
	return rounds[len(rounds)-1].IsCorrect
}

// UsedWordIDs は出題済みの単語IDを返します
func UsedWordIDs(rounds []*model.TriviaRound) map[uuid.UUID]bool {
	used := make(map[uuid.UUID]bool, len(rounds))
	for _, r := range rounds {
		used[r.WordID] = true
	}
	return used
}

func summaryWord(w *model.Word) model.SummaryWord {
	return model.SummaryWord{
		WordID:      w.WordID,
		Term:        w.Term,
		Translation: w.Translation,
		StageID:     w.StageID,
	}
}

// IncorrectWords は不正解だった単語を出題順に返します
func IncorrectWords(rounds []*model.TriviaRound) []model.SummaryWord {
	words := []model.SummaryWord{}
	for _, r := range rounds {
		if !r.IsCorrect && r.Word != nil {
			words = append(words, summaryWord(r.Word))
		}
	}
	return words
}

// ImprovedWords は正解した単語のうち、現在の評価が3以上のものを最大10件返します。
// 回答で評価が上がったかどうかは見ていません。
func ImprovedWords(rounds []*model.TriviaRound, ratings map[uuid.UUID]int) []model.SummaryWord {
	words := []model.SummaryWord{}
	for _, r := range rounds {
		if len(words) == MaxImprovedWords {
			break
		}
		if r.IsCorrect && r.Word != nil && RatingOf(ratings, r.WordID) >= ImprovedRatingThreshold {
			words = append(words, summaryWord(r.Word))
		}
	}
	return words
}
