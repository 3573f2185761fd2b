package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairBankSizes(t *testing.T) {
	assert.Len(t, GeographyPairs(), 50)
	assert.Len(t, DatePairs(), 45)
	assert.Len(t, PopulationPairs(), 40)
	assert.Len(t, AllPairs(), 135)
}

// Question B is the logical converse of question A, so on every non-tie
// pair exactly one ground truth is YES. Ties break the invariant by
// construction: both ground truths are NO.
func TestPairNegationInvariant(t *testing.T) {
	for _, p := range AllPairs() {
		if p.Tie {
			assert.Equal(t, "NO", p.GroundTruthA, "%s", p.PairID)
			assert.Equal(t, "NO", p.GroundTruthB, "%s", p.PairID)
			continue
		}
		assert.NotEqual(t, p.GroundTruthA, p.GroundTruthB,
			"%s: %s vs %s", p.PairID, p.EntityX, p.EntityY)
	}
}

func TestPairIDsDeterministic(t *testing.T) {
	geo := GeographyPairs()
	assert.Equal(t, "geo_000", geo[0].PairID)
	assert.Equal(t, "geo_049", geo[49].PairID)
	assert.Equal(t, "date_000", DatePairs()[0].PairID)
	assert.Equal(t, "pop_000", PopulationPairs()[0].PairID)
}

func TestPairQuestionsRendered(t *testing.T) {
	for _, p := range AllPairs() {
		require.Contains(t, p.QuestionA, p.EntityX, "%s", p.PairID)
		require.Contains(t, p.QuestionA, p.EntityY, "%s", p.PairID)
		require.Contains(t, p.QuestionB, p.EntityX, "%s", p.PairID)
		require.Contains(t, p.QuestionB, p.EntityY, "%s", p.PairID)
		assert.True(t, strings.HasSuffix(p.QuestionA, "YES or NO."), "%s", p.PairID)
	}
}

// Swapping the entity order between A and B is what makes the questions
// converses; X must come first in A and second in B.
func TestPairQuestionOrderSwapped(t *testing.T) {
	for _, p := range GeographyPairs() {
		xa := strings.Index(p.QuestionA, p.EntityX)
		ya := strings.Index(p.QuestionA, p.EntityY)
		xb := strings.Index(p.QuestionB, p.EntityX)
		yb := strings.Index(p.QuestionB, p.EntityY)
		// Entity names can overlap ("Sudan" in "South Sudan"); skip those.
		if strings.Contains(p.EntityX, p.EntityY) || strings.Contains(p.EntityY, p.EntityX) {
			continue
		}
		assert.Less(t, xa, ya, "%s: A should mention %s first", p.PairID, p.EntityX)
		assert.Less(t, yb, xb, "%s: B should mention %s first", p.PairID, p.EntityY)
	}
}

func TestKnownTies(t *testing.T) {
	tieCount := 0
	for _, p := range AllPairs() {
		if p.Tie {
			tieCount++
		}
	}
	assert.NotZero(t, tieCount, "the banks intentionally contain tie pairs")
}

func TestPairSet(t *testing.T) {
	for _, d := range Domains() {
		pairs, err := PairSet(d)
		require.NoError(t, err)
		assert.NotEmpty(t, pairs)
		for _, p := range pairs {
			assert.Equal(t, d, p.Domain)
		}
		assert.NotEmpty(t, PairSystemPrompt(d))
	}

	_, err := PairSet(Domain("astronomy"))
	assert.Error(t, err)
}
