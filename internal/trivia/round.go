package trivia

import (
	"strings"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
)

// Round は生成した1ラウンド分の出題です
type Round struct {
	Word         *model.Word
	Options      []string
	CorrectIndex int
}

// NextRoundNumber は記録済みラウンド数から次のラウンド番号を返します
func NextRoundNumber(playedRounds int) int {
	return playedRounds + 1
}

// BuildRound は未使用の候補から出題単語を選び、他の候補から最大3つの誤答を選んで選択肢を並べ替えます。
// 出題できる単語が無い場合は false を返します。
func BuildRound(rng Rand, pool []*model.Word, used map[uuid.UUID]bool) (*Round, bool) {
	remaining := make([]*model.Word, 0, len(pool))
	for _, w := range pool {
		if !used[w.WordID] {
			remaining = append(remaining, w)
		}
	}
	if len(remaining) == 0 {
		return nil, false
	}

	target := remaining[rng.IntN(len(remaining))]

	// 誤答は使用済みも含めた候補全体から選ぶ。訳が重複する単語は除く
	candidates := make([]*model.Word, 0, len(pool))
	for _, w := range pool {
		if w.WordID != target.WordID {
			candidates = append(candidates, w)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	seen := map[string]bool{normalize(target.Translation): true}
	options := []string{target.Translation}
	for _, c := range candidates {
		if len(options) == model.TriviaOptionCount {
			break
		}
		key := normalize(c.Translation)
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, c.Translation)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correct := 0
	for i, o := range options {
		if o == target.Translation {
			correct = i
			break
		}
	}

	return &Round{Word: target, Options: options, CorrectIndex: correct}, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
