package learning

import (
	"time"

	"go_vocab_trivia/internal/model"
)

// MaxStreakLookback は連続日数の計算で遡る最大日数です
const MaxStreakLookback = 365

// DayKey は時刻をUTCの日付文字列にします
func DayKey(t time.Time) string {
	return t.UTC().Format(model.ActivityDateLayout)
}

// StreakSince は連続日数の計算に必要な最古の日付です
func StreakSince(today time.Time) string {
	return DayKey(today.UTC().AddDate(0, 0, -MaxStreakLookback))
}

// CurrentStreak は今日から遡って途切れずにアクティブだった日数を返します。今日が非アクティブなら0です
func CurrentStreak(activeDays []string, today time.Time) int {
	active := make(map[string]bool, len(activeDays))
	for _, d := range activeDays {
		active[d] = true
	}
	day := today.UTC()
	streak := 0
	for streak < MaxStreakLookback && active[DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
