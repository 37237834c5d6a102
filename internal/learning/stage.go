package learning

import (
	"math"

	"go_vocab_trivia/internal/model"
)

// CompletionThreshold は次のステージが解放される進捗率 (%) です
const CompletionThreshold = 60.0

// MasteredRating 以上の評価の単語をステージ進捗に数えます
const MasteredRating = 3

// StageProgress は評価3以上の単語の割合 (%) を返します。単語が無ければ0です
func StageProgress(mastered, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(mastered) / float64(total) * 100
}

// RoundedProgress は表示用に四捨五入した進捗率です
func RoundedProgress(progress float64) int {
	return int(math.Round(progress))
}

// IsCompleted はステージが完了扱いかを返します
func IsCompleted(progress float64) bool {
	return progress >= CompletionThreshold
}

// StageStatuses は表示順に並んだ進捗率からステータスを決めます。
// 先頭は常に解放済みで、以降は直前のステージが完了していなければロックです。
func StageStatuses(progresses []float64) []string {
	statuses := make([]string, len(progresses))
	for i, p := range progresses {
		if i > 0 && !IsCompleted(progresses[i-1]) {
			statuses[i] = model.StageStatusLocked
			continue
		}
		if IsCompleted(p) {
			statuses[i] = model.StageStatusCompleted
		} else {
			statuses[i] = model.StageStatusInProgress
		}
	}
	return statuses
}

// CountCompleted は完了したステージ数を返します
func CountCompleted(progresses []float64) int {
	n := 0
	for _, p := range progresses {
		if IsCompleted(p) {
			n++
		}
	}
	return n
}
