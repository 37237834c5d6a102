package trivia_test

import (
	"testing"

	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/trivia"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMatchesStars(t *testing.T) {
	tests := []struct {
		name   string
		filter model.StarFilter
		rating int
		want   bool
	}{
		{"weak: 星1", model.StarFilter{Weak: true}, 1, true},
		{"weak: 星2", model.StarFilter{Weak: true}, 2, true},
		{"weak: 星3は対象外", model.StarFilter{Weak: true}, 3, false},
		{"medium: 星3", model.StarFilter{Medium: true}, 3, true},
		{"strong: 星4", model.StarFilter{Strong: true}, 4, true},
		{"strong: 星5", model.StarFilter{Strong: true}, 5, true},
		{"strong: 星2は対象外", model.StarFilter{Strong: true}, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trivia.MatchesStars(tc.filter, tc.rating))
		})
	}
}

func TestEligibleWords(t *testing.T) {
	rated := &model.Word{WordID: uuid.New(), Term: "rated"}
	unrated := &model.Word{WordID: uuid.New(), Term: "unrated"}
	medium := &model.Word{WordID: uuid.New(), Term: "medium"}
	ratings := map[uuid.UUID]int{rated.WordID: 5, medium.WordID: 3}
	words := []*model.Word{rated, unrated, medium}

	// 進捗の無い単語は星1 (weak) 扱い
	weak := trivia.EligibleWords(words, ratings, model.StarFilter{Weak: true})
	assert.Equal(t, []*model.Word{unrated}, weak)

	strongOrMedium := trivia.EligibleWords(words, ratings, model.StarFilter{Medium: true, Strong: true})
	assert.Equal(t, []*model.Word{rated, medium}, strongOrMedium)

	assert.Empty(t, trivia.EligibleWords(words, ratings, model.StarFilter{}))
}

func TestHasEnoughWords(t *testing.T) {
	assert.False(t, trivia.HasEnoughWords(model.TriviaRoundsPerGame-1))
	assert.True(t, trivia.HasEnoughWords(model.TriviaRoundsPerGame))
}
