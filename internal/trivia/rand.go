package trivia

import "math/rand/v2"

// Rand は出題で使う乱数源です。テストではシード固定の実装を渡します
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand はプロセス共有の乱数源を返します
func DefaultRand() Rand {
	return globalRand{}
}

// NewSeededRand は再現可能な乱数源を返します
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
