package corpus

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueLayout(t *testing.T) {
	catalogue := Catalogue()
	require.Len(t, catalogue, 70)
	require.Equal(t, 70, CatalogueSize())

	// Positional indices are a published contract: capitals 0-29, science
	// 30-49, geography 50-69.
	for i := 0; i < 30; i++ {
		assert.Equal(t, Capitals, catalogue[i].Category, "index %d", i)
	}
	for i := 30; i < 50; i++ {
		assert.Equal(t, Science, catalogue[i].Category, "index %d", i)
	}
	for i := 50; i < 70; i++ {
		assert.Equal(t, Geography, catalogue[i].Category, "index %d", i)
	}

	assert.Equal(t, "What is the capital of France?", catalogue[0].Text)
	assert.Equal(t, "Paris", catalogue[0].CorrectAnswer)
}

func TestCatalogueQuestionsWellFormed(t *testing.T) {
	for i, q := range Catalogue() {
		assert.NotEmpty(t, q.Text, "question %d has no text", i)
		assert.NotEmpty(t, q.CorrectAnswer, "question %d has no answer", i)
	}
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory(Capitals), 30)
	assert.Len(t, ByCategory(Science), 20)
	assert.Len(t, ByCategory(Geography), 20)
}

func TestFeedbackBanks(t *testing.T) {
	strong, ok := Bank("STRONG_NEGATIVE")
	require.True(t, ok)
	assert.Len(t, strong, 8)

	negative, ok := Bank("NEGATIVE")
	require.True(t, ok)
	assert.Len(t, negative, 7)

	positive, ok := Bank("POSITIVE")
	require.True(t, ok)
	assert.Len(t, positive, 7)

	_, ok = Bank("MILD_NEGATIVE")
	assert.False(t, ok)

	assert.Equal(t, []string{"STRONG_NEGATIVE", "NEGATIVE", "POSITIVE"}, BankNames())
}

func TestBankPolarity(t *testing.T) {
	assert.Equal(t, Positive, BankPolarity("POSITIVE"))
	assert.Equal(t, Negative, BankPolarity("NEGATIVE"))
	assert.Equal(t, Negative, BankPolarity("STRONG_NEGATIVE"))
}

func TestRandomFeedbackSeedReproducible(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		fa, err := RandomFeedback(a, Negative)
		require.NoError(t, err)
		fb, err := RandomFeedback(b, Negative)
		require.NoError(t, err)
		assert.Equal(t, fa, fb)
	}

	_, err := RandomFeedback(a, Polarity("neutral"))
	assert.Error(t, err)
}

func TestRandomFeedbackDrawsFromPolarityBank(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		f, err := RandomFeedback(rng, Positive)
		require.NoError(t, err)
		seen[f] = true
	}
	for f := range seen {
		assert.Contains(t, positiveFeedback, f)
	}
}
