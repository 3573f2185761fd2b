// Package manifest implements the versioned dataset-configuration layer.
// A manifest is the single source of truth for what a dataset run contains:
// no trajectory may exist that is not derivable by expanding one. Expansion
// order is a contract, not an implementation accident, because downstream
// code indexes into cached activation tensors by position.
package manifest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"probelab/internal/corpus"
)

// SchemaVersion is the manifest schema this engine expects. Load fails on
// any other version.
const SchemaVersion = "1.0"

// DefaultTrajectoryIDFormat produces ids like "train_q007_f2".
const DefaultTrajectoryIDFormat = "{split}_q{question_idx:03d}_f{feedback_idx}"

// SplitName selects a manifest split.
type SplitName string

const (
	Train SplitName = "train"
	Eval  SplitName = "eval"
)

// Split is one data split: an ordered set of question indices into the
// corpus catalogue.
type Split struct {
	QuestionIndices []int  `json:"question_indices"`
	Description     string `json:"description"`
}

// Splits groups the train and eval splits under the documented JSON layout.
type Splits struct {
	Train Split `json:"train"`
	Eval  Split `json:"eval"`
}

// FeedbackConfig selects which feedback templates a run uses: a named bank,
// either in full or restricted to an explicit index subset.
type FeedbackConfig struct {
	TemplateBank    string `json:"template_bank"`
	UseAllTemplates bool   `json:"use_all_templates"`
	TemplateIndices []int  `json:"template_indices"`
}

// Templates resolves the configured feedback strings in deterministic
// order: bank order, or the explicit subset order when restricted.
func (f FeedbackConfig) Templates() ([]string, error) {
	bank, ok := corpus.Bank(f.TemplateBank)
	if !ok {
		return nil, fmt.Errorf("unknown feedback bank: %q", f.TemplateBank)
	}
	if f.UseAllTemplates {
		return bank, nil
	}
	out := make([]string, 0, len(f.TemplateIndices))
	for _, i := range f.TemplateIndices {
		if i < 0 || i >= len(bank) {
			return nil, fmt.Errorf("template index %d out of range [0, %d)", i, len(bank))
		}
		out = append(out, bank[i])
	}
	return out, nil
}

// Manifest is the complete, reproducible configuration of a dataset run.
// legacyFeedback is populated only via LoadLegacy; the exported type for
// such historical datasets is LegacyManifest.
type Manifest struct {
	SchemaVersion      string         `json:"schema_version"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Created            string         `json:"created"`
	Splits             Splits         `json:"splits"`
	Feedback           FeedbackConfig `json:"feedback"`
	TrajectoryIDFormat string         `json:"trajectory_id_format"`
}

// Split returns the named split.
func (m *Manifest) Split(name SplitName) (Split, error) {
	switch name {
	case Train:
		return m.Splits.Train, nil
	case Eval:
		return m.Splits.Eval, nil
	default:
		return Split{}, fmt.Errorf("unknown split: %q", name)
	}
}

// ValidationError aggregates every violation found in a manifest so a human
// can fix the file in one pass.
type ValidationError struct {
	Name       string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid manifest %q:\n  - %s", e.Name, strings.Join(e.Violations, "\n  - "))
}

// Validate checks the manifest against the engine's schema version and the
// catalogue size. All violations are collected and returned together; a nil
// return means the manifest is safe to expand.
func (m *Manifest) Validate(catalogueSize int) error {
	var violations []string

	if m.SchemaVersion != SchemaVersion {
		violations = append(violations,
			fmt.Sprintf("schema version mismatch: %q != %q", m.SchemaVersion, SchemaVersion))
	}

	trainSet := make(map[int]struct{}, len(m.Splits.Train.QuestionIndices))
	for _, i := range m.Splits.Train.QuestionIndices {
		trainSet[i] = struct{}{}
	}
	var overlap []int
	for _, i := range m.Splits.Eval.QuestionIndices {
		if _, ok := trainSet[i]; ok {
			overlap = append(overlap, i)
		}
	}
	if len(overlap) > 0 {
		sort.Ints(overlap)
		violations = append(violations,
			fmt.Sprintf("question indices appear in both train and eval: %v", overlap))
	}

	for _, sp := range []struct {
		name SplitName
		s    Split
	}{{Train, m.Splits.Train}, {Eval, m.Splits.Eval}} {
		for _, i := range sp.s.QuestionIndices {
			if i < 0 || i >= catalogueSize {
				violations = append(violations,
					fmt.Sprintf("%s question index %d out of range [0, %d)", sp.name, i, catalogueSize))
			}
		}
	}

	bank, ok := corpus.Bank(m.Feedback.TemplateBank)
	if !ok {
		violations = append(violations,
			fmt.Sprintf("unknown feedback bank: %q (known: %s)",
				m.Feedback.TemplateBank, strings.Join(corpus.BankNames(), ", ")))
	} else if !m.Feedback.UseAllTemplates {
		for _, i := range m.Feedback.TemplateIndices {
			if i < 0 || i >= len(bank) {
				violations = append(violations,
					fmt.Sprintf("feedback template index %d out of range [0, %d)", i, len(bank)))
			}
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Name: m.Name, Violations: violations}
	}
	return nil
}

// TrajectoryCount returns the number of trajectories the split expands to.
func (m *Manifest) TrajectoryCount(name SplitName) (int, error) {
	sp, err := m.Split(name)
	if err != nil {
		return 0, err
	}
	templates, err := m.Feedback.Templates()
	if err != nil {
		return 0, err
	}
	return len(sp.QuestionIndices) * len(templates), nil
}

// Canonical returns the canonical v1 manifest: probe training on questions
// 0-49, held-out steering evaluation on 50-69, all strong negative feedback
// templates per question. The caller supplies the creation time so nothing
// in this package reads the clock.
func Canonical(created time.Time) *Manifest {
	train := make([]int, 50)
	eval := make([]int, 20)
	for i := range train {
		train[i] = i
	}
	for i := range eval {
		eval[i] = 50 + i
	}
	return &Manifest{
		SchemaVersion: SchemaVersion,
		Name:          "canonical_v1",
		Description:   "Canonical sycophancy dataset with held-out eval. Train on questions 0-49, evaluate steering on 50-69.",
		Created:       created.Format(time.RFC3339),
		Splits: Splits{
			Train: Split{
				QuestionIndices: train,
				Description:     "First 50 questions (30 capitals, 20 science) for probe training",
			},
			Eval: Split{
				QuestionIndices: eval,
				Description:     "Last 20 questions (geography) held-out for steering evaluation",
			},
		},
		Feedback: FeedbackConfig{
			TemplateBank:    "STRONG_NEGATIVE",
			UseAllTemplates: true,
		},
		TrajectoryIDFormat: DefaultTrajectoryIDFormat,
	}
}
