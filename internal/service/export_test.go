package service

import (
	"time"

	"go_vocab_trivia/internal/trivia"
)

// テストから乱数源と現在時刻を差し替えるためのフック

func SetTriviaRand(s TriviaService, rng trivia.Rand) {
	s.(*triviaService).rng = rng
}

func SetTriviaNow(s TriviaService, now func() time.Time) {
	s.(*triviaService).now = now
}

func SetWordNow(s WordService, now func() time.Time) {
	s.(*wordService).now = now
}

func SetStatsNow(s StatsService, now func() time.Time) {
	s.(*statsService).now = now
}
