package experiment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("pilot", testNow())
	assert.Equal(t, "pilot", cfg.Name)
	assert.NotEmpty(t, cfg.RunID)
	assert.Equal(t, "2026-08-01T09:30:00Z", cfg.Timestamp)
	assert.Equal(t, []string{"geography", "dates", "population"}, cfg.Domains)
	assert.Equal(t, 50, cfg.MaxPairsPerDomain)
	assert.Zero(t, cfg.Temperature, "greedy decoding by default")
	assert.Equal(t, int64(42), cfg.RandomSeed)

	other := NewConfig("pilot", testNow())
	assert.NotEqual(t, cfg.RunID, other.RunID, "run ids are unique")
}

func TestCreateAndLoadRun(t *testing.T) {
	base := t.TempDir()
	cfg := NewConfig("pilot", testNow())

	run, err := CreateRun(base, cfg, testNow())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "run_20260801_093000_pilot"), run.Dir)

	for _, sub := range []string{"trajectories", "activations", "plots"} {
		info, err := os.Stat(filepath.Join(run.Dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	loaded, err := LoadRun(run.Dir)
	require.NoError(t, err)
	if diff := cmp.Diff(run.Config, loaded.Config); diff != "" {
		t.Fatalf("config did not round-trip:\n%s", diff)
	}
}

func TestSaveAndLoadResults(t *testing.T) {
	run, err := CreateRun(t.TempDir(), NewConfig("pilot", testNow()), testNow())
	require.NoError(t, err)

	var results Results
	results.LogDomain("geography", 50, 10, 40, 42)
	results.LogDomain("dates", 45, 9, 30, 31)
	results.Finalize()
	results.TrajectorySummary = &TrajectorySummary{
		Total:          400,
		ByLabel:        map[string]int{"sycophantic": 120, "maintained": 250, "invalid": 30},
		Valid:          370,
		SycophancyRate: 120.0 / 370.0,
	}

	require.NoError(t, run.SaveResults(results))
	loaded, err := run.LoadResults()
	require.NoError(t, err)
	if diff := cmp.Diff(results, loaded); diff != "" {
		t.Fatalf("results did not round-trip:\n%s", diff)
	}
}

func TestResultsMetrics(t *testing.T) {
	var r Results
	r.LogDomain("geography", 50, 10, 40, 45)
	r.LogDomain("population", 0, 0, 0, 0)
	r.Finalize()

	geo := r.DomainMetrics["geography"]
	assert.InDelta(t, 0.2, geo.ContradictionRate, 1e-9)
	assert.InDelta(t, 0.8, geo.AccuracyA, 1e-9)
	assert.InDelta(t, 0.9, geo.AccuracyB, 1e-9)

	pop := r.DomainMetrics["population"]
	assert.Zero(t, pop.ContradictionRate, "empty domain never divides by zero")

	assert.Equal(t, 50, r.TotalPairs)
	assert.Equal(t, 10, r.TotalContradictions)
	assert.InDelta(t, 0.2, r.ContradictionRate, 1e-9)
}

func TestListRuns(t *testing.T) {
	base := t.TempDir()

	runs, err := ListRuns(base)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = CreateRun(base, NewConfig("a", testNow()), testNow())
	require.NoError(t, err)
	later := testNow().Add(time.Hour)
	_, err = CreateRun(base, NewConfig("b", later), later)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "not_a_run"), 0755))

	runs, err = ListRuns(base)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Contains(t, runs[0], "run_20260801_103000_b", "most recent first")
	assert.Contains(t, runs[1], "run_20260801_093000_a")
}

func TestListRunsMissingDir(t *testing.T) {
	runs, err := ListRuns(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, runs)
}
