// Package catalog はステージと単語の投入データを読み込み、DBへ反映します
package catalog

import (
	"fmt"
	"strings"

	"go_vocab_trivia/internal/model"
)

// DefaultStageCount は投入するステージ数の既定値です
const DefaultStageCount = 10

// Entry は投入ファイルの1単語です
type Entry struct {
	Term            string  `json:"term"`
	Translation     string  `json:"translation"`
	ExampleSentence *string `json:"example_sentence,omitempty"`
}

// termKey は重複判定用のキー (前後空白を除いた小文字)
func termKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// DifficultyFor はステージ番号から単語の難易度を決めます (1〜3: 1, 4〜6: 2, 以降: 3)
func DifficultyFor(stageNum uint) int {
	switch {
	case stageNum <= 3:
		return 1
	case stageNum <= 6:
		return 2
	default:
		return 3
	}
}

// DifficultyRangeFor はステージの難易度帯の表示用文字列です
func DifficultyRangeFor(stageNum uint) string {
	switch {
	case stageNum <= 3:
		return "1-2"
	case stageNum <= 6:
		return "2-3"
	default:
		return "3"
	}
}

func levelLabel(stageNum uint) string {
	switch {
	case stageNum == 1:
		return "Beginner"
	case stageNum <= 3:
		return "Intermediate"
	case stageNum <= 6:
		return "Advanced"
	default:
		return "Expert"
	}
}

// StageFor はステージ番号に対応するステージ定義を返します
func StageFor(stageNum uint) *model.Stage {
	return &model.Stage{
		StageID:         stageNum,
		OrderIndex:      int(stageNum),
		Name:            fmt.Sprintf("Stage %d - %s", stageNum, levelLabel(stageNum)),
		Description:     fmt.Sprintf("Stage %d vocabulary", stageNum),
		DifficultyRange: DifficultyRangeFor(stageNum),
	}
}

// Dedupe は空の単語、ステージ内の重複、seen に含まれる単語を取り除きます。
// 残した単語は seen に追加されるので、ステージ順に呼び出すと下位ステージ優先になります
func Dedupe(entries []Entry, seen map[string]struct{}) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := termKey(e.Term)
		if key == "" || strings.TrimSpace(e.Translation) == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		e.Term = strings.TrimSpace(e.Term)
		e.Translation = strings.TrimSpace(e.Translation)
		result = append(result, e)
	}
	return result
}
