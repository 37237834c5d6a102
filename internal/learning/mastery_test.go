package learning

import (
	"testing"
	"time"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampRating(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{-2, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {100, 5}} {
		assert.Equal(t, tc.want, ClampRating(tc.in), "rating %d", tc.in)
	}
}

func TestNewProgressFromAnswer(t *testing.T) {
	now := time.Now()

	correct := NewProgressFromAnswer(uuid.New(), uuid.New(), true, now)
	assert.Equal(t, 3, correct.StarRating)
	assert.Equal(t, 1, correct.CorrectCount)
	assert.Equal(t, 0, correct.IncorrectCount)
	assert.Equal(t, 1, correct.CorrectStreak)
	require.NotNil(t, correct.LastAnswerResult)
	assert.Equal(t, model.AnswerResultCorrect, *correct.LastAnswerResult)

	wrong := NewProgressFromAnswer(uuid.New(), uuid.New(), false, now)
	assert.Equal(t, 2, wrong.StarRating)
	assert.Equal(t, 0, wrong.CorrectCount)
	assert.Equal(t, 1, wrong.IncorrectCount)
	assert.Equal(t, 0, wrong.CorrectStreak)
	assert.Equal(t, model.AnswerResultIncorrect, *wrong.LastAnswerResult)
}

func TestApplyAnswer(t *testing.T) {
	now := time.Now()

	t.Run("正常系: 星2の正解は即座に星3へ", func(t *testing.T) {
		p := &model.UserWordProgress{StarRating: 2}
		ApplyAnswer(p, true, now)
		assert.Equal(t, 3, p.StarRating)
		assert.Equal(t, 1, p.CorrectStreak)
	})

	t.Run("正常系: 星3は2連続正解で星4になり連続数をリセット", func(t *testing.T) {
		p := &model.UserWordProgress{StarRating: 3}
		ApplyAnswer(p, true, now)
		assert.Equal(t, 3, p.StarRating)
		assert.Equal(t, 1, p.CorrectStreak)

		ApplyAnswer(p, true, now)
		assert.Equal(t, 4, p.StarRating)
		assert.Equal(t, 0, p.CorrectStreak)
		assert.Equal(t, 2, p.CorrectCount)
	})

	t.Run("正常系: 星5は上限のまま", func(t *testing.T) {
		p := &model.UserWordProgress{StarRating: 5, CorrectStreak: 1}
		ApplyAnswer(p, true, now)
		assert.Equal(t, 5, p.StarRating)
		assert.Equal(t, 0, p.CorrectStreak)
	})

	t.Run("正常系: 不正解は星3以上なら1つ下げる", func(t *testing.T) {
		p := &model.UserWordProgress{StarRating: 4, CorrectStreak: 1}
		ApplyAnswer(p, false, now)
		assert.Equal(t, 3, p.StarRating)
		assert.Equal(t, 0, p.CorrectStreak)
		assert.Equal(t, 1, p.IncorrectCount)
		assert.Equal(t, model.AnswerResultIncorrect, *p.LastAnswerResult)
	})

	t.Run("正常系: 星1〜2の不正解は下げない", func(t *testing.T) {
		for _, r := range []int{1, 2} {
			p := &model.UserWordProgress{StarRating: r}
			ApplyAnswer(p, false, now)
			assert.Equal(t, r, p.StarRating)
		}
	})

	t.Run("正常系: どの評価から始めても1〜5に収まる", func(t *testing.T) {
		for start := 1; start <= 5; start++ {
			p := &model.UserWordProgress{StarRating: start}
			for i := 0; i < 20; i++ {
				ApplyAnswer(p, i%3 != 0, now)
				assert.GreaterOrEqual(t, p.StarRating, model.MinStarRating)
				assert.LessOrEqual(t, p.StarRating, model.MaxStarRating)
			}
			require.NotNil(t, p.LastSeenAt)
		}
	})
}

func TestApplyEdit(t *testing.T) {
	now := time.Now()
	p := NewProgressFromEdit(uuid.New(), uuid.New(), nil, nil, now)
	assert.Equal(t, model.DefaultStarRating, p.StarRating)
	assert.Equal(t, "", p.Notes)

	rating, notes := 7, "hard word"
	ApplyEdit(p, &rating, &notes, now)
	assert.Equal(t, 5, p.StarRating)
	assert.Equal(t, "hard word", p.Notes)

	ApplyEdit(p, nil, nil, now.Add(time.Minute))
	assert.Equal(t, 5, p.StarRating)
	assert.Equal(t, "hard word", p.Notes)
	assert.True(t, now.Add(time.Minute).Equal(*p.LastSeenAt))
}
