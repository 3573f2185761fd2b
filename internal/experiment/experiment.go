// Package experiment manages self-contained run folders. Each run carries
// its configuration, aggregate results, and trajectory tables, so a
// finished experiment can be audited or relabeled without any other state.
package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config captures everything needed to reproduce a run.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RunID       string `json:"run_id"`
	Timestamp   string `json:"timestamp"`

	Provider string `json:"provider"`
	Model    string `json:"model"`

	Domains           []string `json:"domains"`
	MaxPairsPerDomain int      `json:"max_pairs_per_domain"`

	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`

	RandomSeed int64  `json:"random_seed"`
	Notes      string `json:"notes"`
}

// NewConfig returns a config with defaults matching the canonical
// experiment setup. Temperature 0 means greedy decoding.
func NewConfig(name string, now time.Time) Config {
	return Config{
		Name:              name,
		RunID:             uuid.NewString(),
		Timestamp:         now.Format(time.RFC3339),
		Domains:           []string{"geography", "dates", "population"},
		MaxPairsPerDomain: 50,
		MaxNewTokens:      300,
		Temperature:       0,
		RandomSeed:        42,
	}
}

// DomainMetrics aggregates contradiction results for one pair domain.
type DomainMetrics struct {
	TotalPairs        int     `json:"total_pairs"`
	Contradictions    int     `json:"contradictions"`
	ContradictionRate float64 `json:"contradiction_rate"`
	CorrectA          int     `json:"correct_a"`
	CorrectB          int     `json:"correct_b"`
	AccuracyA         float64 `json:"accuracy_a"`
	AccuracyB         float64 `json:"accuracy_b"`
}

// TrajectorySummary is the persisted label breakdown of a feedback run, so
// a finished run folder carries its aggregate outcome without re-reading
// the trajectory store. Label tags are stored as plain strings.
type TrajectorySummary struct {
	Total          int            `json:"total"`
	ByLabel        map[string]int `json:"by_label"`
	Valid          int            `json:"valid"`
	SycophancyRate float64        `json:"sycophancy_rate"`
}

// Results holds the aggregate metrics of a run.
type Results struct {
	TotalPairs          int                      `json:"total_pairs"`
	TotalContradictions int                      `json:"total_contradictions"`
	ContradictionRate   float64                  `json:"contradiction_rate"`
	DomainMetrics       map[string]DomainMetrics `json:"domain_metrics"`
	TrajectorySummary   *TrajectorySummary       `json:"trajectory_summary,omitempty"`
	StartTime           string                   `json:"start_time"`
	EndTime             string                   `json:"end_time"`
	DurationSeconds     float64                  `json:"duration_seconds"`
	Errors              []string                 `json:"errors"`
}

// LogDomain records metrics for one domain.
func (r *Results) LogDomain(domain string, totalPairs, contradictions, correctA, correctB int) {
	if r.DomainMetrics == nil {
		r.DomainMetrics = make(map[string]DomainMetrics)
	}
	m := DomainMetrics{
		TotalPairs:     totalPairs,
		Contradictions: contradictions,
		CorrectA:       correctA,
		CorrectB:       correctB,
	}
	if totalPairs > 0 {
		m.ContradictionRate = float64(contradictions) / float64(totalPairs)
		m.AccuracyA = float64(correctA) / float64(totalPairs)
		m.AccuracyB = float64(correctB) / float64(totalPairs)
	}
	r.DomainMetrics[domain] = m
}

// Finalize rolls the per-domain metrics up into the run totals.
func (r *Results) Finalize() {
	r.TotalPairs = 0
	r.TotalContradictions = 0
	for _, m := range r.DomainMetrics {
		r.TotalPairs += m.TotalPairs
		r.TotalContradictions += m.Contradictions
	}
	if r.TotalPairs > 0 {
		r.ContradictionRate = float64(r.TotalContradictions) / float64(r.TotalPairs)
	} else {
		r.ContradictionRate = 0
	}
}

// Run is one experiment run folder on disk.
type Run struct {
	Dir    string
	Config Config
}

// CreateRun creates a run folder run_<timestamp>_<name> under baseDir with
// the standard subdirectories, and persists the config.
func CreateRun(baseDir string, cfg Config, now time.Time) (*Run, error) {
	dirName := fmt.Sprintf("run_%s_%s", now.Format("20060102_150405"), cfg.Name)
	dir := filepath.Join(baseDir, dirName)

	for _, sub := range []string{"", "trajectories", "activations", "plots"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create run directory: %w", err)
		}
	}

	run := &Run{Dir: dir, Config: cfg}
	if err := run.SaveConfig(); err != nil {
		return nil, err
	}
	return run, nil
}

// SaveConfig writes config.json into the run folder.
func (r *Run) SaveConfig() error {
	return writeJSON(filepath.Join(r.Dir, "config.json"), r.Config)
}

// SaveResults writes results.json into the run folder.
func (r *Run) SaveResults(results Results) error {
	return writeJSON(filepath.Join(r.Dir, "results.json"), results)
}

// LoadRun opens an existing run folder.
func LoadRun(dir string) (*Run, error) {
	var cfg Config
	if err := readJSON(filepath.Join(dir, "config.json"), &cfg); err != nil {
		return nil, err
	}
	return &Run{Dir: dir, Config: cfg}, nil
}

// LoadResults reads results.json from the run folder.
func (r *Run) LoadResults() (Results, error) {
	var res Results
	err := readJSON(filepath.Join(r.Dir, "results.json"), &res)
	return res, err
}

// ListRuns returns run folder paths under baseDir, most recent first.
func ListRuns(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	var runs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "run_") {
			runs = append(runs, filepath.Join(baseDir, e.Name()))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(runs)))
	return runs, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
