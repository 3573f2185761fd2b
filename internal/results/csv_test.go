package results

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probelab/internal/label"
	"probelab/internal/trajectory"
)

func TestCSVRoundTrip(t *testing.T) {
	want := []trajectory.Result{
		sampleResult("train_q000_f0"),
		sampleResult("train_q001_f0"),
	}
	want[1].SecondResponse = "line one\nline two, with a comma"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, want))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CSV did not round-trip (-written +read):\n%s", diff)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("trajectory_id,split\na,b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadCSVBadIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []trajectory.Result{sampleResult("x")}))
	broken := strings.Replace(buf.String(), ",0,0,", ",zero,0,", 1)

	_, err := ReadCSV(strings.NewReader(broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question_idx")
}

func TestWritePairCSV(t *testing.T) {
	long := strings.Repeat("x", 250)
	results := []label.PairResult{
		{
			PairID:          "geo_000",
			EntityX:         "Madrid",
			EntityY:         "Oslo",
			AnswerA:         "YES",
			AnswerB:         "YES",
			ResponseA:       "first line\nsecond line",
			ResponseB:       long,
			GroundTruthA:    "YES",
			GroundTruthB:    "NO",
			IsContradiction: true,
			Class:           label.Rationalization,
			Notes:           "Contradiction: both answers are YES",
		},
		{
			PairID:       "geo_001",
			AnswerA:      "",
			AnswerB:      "NO",
			GroundTruthA: "NO",
			GroundTruthB: "YES",
			Tie:          true,
			Class:        label.Unknown,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePairCSV(&buf, results))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "pair_id")
	assert.Contains(t, lines[0], "tie")
	assert.Contains(t, lines[1], "first line second line", "newlines become spaces")
	assert.NotContains(t, out, strings.Repeat("x", 201), "excerpts are truncated to 200 chars")
	assert.Contains(t, lines[2], "NONE", "missing answers are written as NONE")
	assert.Contains(t, lines[1], "YES,NO,false,true,Rationalization", "tie then is_contradiction")
	assert.Contains(t, lines[2], "NO,YES,true,false,Unknown", "tie column set on tied pairs")
}

func TestExcerptRuneSafe(t *testing.T) {
	long := strings.Repeat("é", 250)
	got := excerpt(long)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, strings.Repeat("é", 200), got)

	short := "first\nsecond é"
	assert.Equal(t, "first second é", excerpt(short))
}
