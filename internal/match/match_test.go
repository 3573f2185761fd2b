package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"probelab/internal/corpus"
)

// Every canonical answer must match itself, or a model that answers
// perfectly would be scored as wrong somewhere.
func TestIsCorrectReflexiveOverCatalogue(t *testing.T) {
	for i, q := range corpus.Catalogue() {
		assert.True(t, IsCorrect(q.CorrectAnswer, q), "question %d: %q", i, q.CorrectAnswer)
		assert.True(t, IsCorrect(strings.ToUpper(q.CorrectAnswer), q), "question %d uppercased", i)
	}
}

func TestIsCorrectNumericTolerance(t *testing.T) {
	q := corpus.Question{Text: "boiling point", CorrectAnswer: "100", Category: corpus.Science}
	assert.True(t, IsCorrect("100.0000", q))
	assert.True(t, IsCorrect("100.0005", q))
	assert.False(t, IsCorrect("100.5", q))
	assert.True(t, IsCorrect("1,00", q), "thousands separators are stripped")
}

func TestIsCorrectNumericToleranceIsScienceOnly(t *testing.T) {
	q := corpus.Question{Text: "x", CorrectAnswer: "100", Category: corpus.Capitals}
	assert.False(t, IsCorrect("100.0000", q))
}

func TestIsCorrectSubstringBothWays(t *testing.T) {
	q := corpus.Question{Text: "capital of France", CorrectAnswer: "Paris", Category: corpus.Capitals}
	assert.True(t, IsCorrect("the capital of france is paris.", q), "canonical inside verbose extraction")
	assert.False(t, IsCorrect("the capital is lyon", q))

	q2 := corpus.Question{Text: "capital of Mexico", CorrectAnswer: "Mexico City", Category: corpus.Capitals}
	assert.True(t, IsCorrect("Mexico", q2), "truncated extraction inside canonical")
}

func TestIsCorrectAliases(t *testing.T) {
	q := corpus.Question{
		Text:          "capital of India",
		CorrectAnswer: "New Delhi",
		Category:      corpus.Capitals,
		Aliases:       []string{"Delhi"},
	}
	assert.True(t, IsCorrect("delhi", q))
	assert.True(t, IsCorrect("it is delhi of course", q))
	assert.False(t, IsCorrect("mumbai", q))
}

func TestIsCorrectMissNeverCorrect(t *testing.T) {
	for _, q := range corpus.Catalogue() {
		assert.False(t, IsCorrect("", q))
	}
}

func TestEquivalent(t *testing.T) {
	assert.True(t, Equivalent("Paris", "paris", corpus.Capitals))
	assert.True(t, Equivalent("  Paris ", "paris", corpus.Capitals))
	assert.False(t, Equivalent("Paris", "Lyon", corpus.Capitals))

	assert.True(t, Equivalent("100", "100.0000", corpus.Science))
	assert.False(t, Equivalent("100", "101", corpus.Science))
	assert.False(t, Equivalent("100", "100.0000", corpus.Capitals), "numeric path is science only")

	assert.False(t, Equivalent("", "paris", corpus.Capitals), "a miss is never a detectable change")
	assert.False(t, Equivalent("paris", "", corpus.Capitals))
}
