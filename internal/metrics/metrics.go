// Package metrics はトリビアと学習操作の Prometheus メトリクスです。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// 作成されたゲーム数
	gamesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trivia_games_started_total",
			Help: "Total number of trivia sessions created",
		},
	)

	// 候補不足で作成できなかった回数
	insufficientPool = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trivia_insufficient_pool_total",
			Help: "Total number of session creations rejected for a small word pool",
		},
	)

	answersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_answers_total",
			Help: "Total number of trivia answers",
		},
		[]string{"result"}, // correct / incorrect / timeout
	)

	gamesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_games_completed_total",
			Help: "Total number of finished trivia sessions",
		},
		[]string{"reason"}, // rounds / lives / exhausted
	)

	finalScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trivia_final_score",
			Help:    "Score of finished trivia sessions",
			Buckets: prometheus.LinearBuckets(0, 25, 10),
		},
	)

	submitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trivia_answer_duration_seconds",
			Help:    "Time spent processing an answer submission",
			Buckets: prometheus.DefBuckets,
		},
	)

	progressUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "word_progress_updates_total",
			Help: "Total number of manual star rating or note updates",
		},
	)
)

// 終了理由
const (
	EndReasonRounds    = "rounds"
	EndReasonLives     = "lives"
	EndReasonExhausted = "exhausted"
)

func GameStarted() { gamesStarted.Inc() }

func InsufficientPool() { insufficientPool.Inc() }

// AnswerSubmitted は回答結果を記録します
func AnswerSubmitted(correct, timedOut bool, seconds float64) {
	result := "incorrect"
	switch {
	case timedOut:
		result = "timeout"
	case correct:
		result = "correct"
	}
	answersSubmitted.WithLabelValues(result).Inc()
	submitDuration.Observe(seconds)
}

func GameCompleted(reason string, score int) {
	gamesCompleted.WithLabelValues(reason).Inc()
	finalScore.Observe(float64(score))
}

func ProgressUpdated() { progressUpdates.Inc() }

// Handler は /metrics 用のハンドラです
func Handler() http.Handler {
	return promhttp.Handler()
}
