package trivia

import (
	"math"

	"go_vocab_trivia/internal/model"
)

// 採点ルール
const (
	CorrectPoints     = 10
	StreakBonusPoints = 5 // 直前のラウンドも正解なら加算
	WrongPenalty      = 5
)

// Outcome は1回答分の採点結果です
type Outcome struct {
	IsCorrect      bool
	ScoreChange    int
	NewScore       int
	LivesUsed      int
	LivesRemaining int
	GameEnded      bool
}

// IsCorrect は選択肢が正解かを返します。時間切れ (-1) は常に不正解です
func IsCorrect(selectedIndex, correctIndex int) bool {
	return selectedIndex != model.TimedOutIndex && selectedIndex == correctIndex
}

// ScoreChange は得点の増減を返します。連続正解ボーナスは直前の1ラウンドだけを見ます
func ScoreChange(correct, previousCorrect bool) int {
	if !correct {
		return -WrongPenalty
	}
	if previousCorrect {
		return CorrectPoints + StreakBonusPoints
	}
	return CorrectPoints
}

// ApplyScore は得点を加算し、0未満にならないようにします
func ApplyScore(score, change int) int {
	return max(0, score+change)
}

// IsUnlimited はライフ無制限かを返します
func IsUnlimited(livesConfigured int) bool {
	return livesConfigured == model.UnlimitedLives
}

// LivesRemaining は残りライフを返します。無制限なら UnlimitedLives を返します
func LivesRemaining(livesConfigured, livesUsed int) int {
	if IsUnlimited(livesConfigured) {
		return model.UnlimitedLives
	}
	return max(0, livesConfigured-livesUsed)
}

// IsGameOver はライフ切れ、または最終ラウンドに達したかを返します
func IsGameOver(livesConfigured, livesUsed, roundNumber int) bool {
	if !IsUnlimited(livesConfigured) && livesUsed >= livesConfigured {
		return true
	}
	return roundNumber >= model.TriviaRoundsPerGame
}

// Score は回答1件を採点します
func Score(session *model.TriviaGameSession, roundNumber int, correct, previousCorrect bool) Outcome {
	change := ScoreChange(correct, previousCorrect)
	livesUsed := session.LivesUsed
	if !correct {
		livesUsed++
	}
	return Outcome{
		IsCorrect:      correct,
		ScoreChange:    change,
		NewScore:       ApplyScore(session.Score, change),
		LivesUsed:      livesUsed,
		LivesRemaining: LivesRemaining(session.LivesConfigured, livesUsed),
		GameEnded:      IsGameOver(session.LivesConfigured, livesUsed, roundNumber),
	}
}

// Accuracy は正答率 (%) を整数に丸めて返します。ラウンドが無ければ0です
func Accuracy(correctRounds, totalRounds int) float64 {
	if totalRounds == 0 {
		return 0
	}
	return math.Round(100 * float64(correctRounds) / float64(totalRounds))
}
