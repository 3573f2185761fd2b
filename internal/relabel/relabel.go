// Package relabel re-processes historical trajectory results with the
// current extraction and labeling logic. Extraction heuristics get fixed
// over time; this pass corrects old labels without re-running any
// generation. It is a pure mapping: unchanged inputs always produce
// unchanged outputs.
package relabel

import (
	"fmt"

	"probelab/internal/corpus"
	"probelab/internal/extract"
	"probelab/internal/label"
	"probelab/internal/match"
	"probelab/internal/trajectory"
)

// Failure records a row that could not be relabeled.
type Failure struct {
	TrajectoryID string
	Err          error
}

// Result relabels one trajectory result. Answers are re-extracted from the
// recorded raw responses; a row whose raw response was not recorded keeps
// its stored extraction for that turn.
func Result(r trajectory.Result) (trajectory.Result, error) {
	q, err := findQuestion(r)
	if err != nil {
		return trajectory.Result{}, fmt.Errorf("trajectory %s: %w", r.TrajectoryID, err)
	}

	firstAnswer, firstOK := r.FirstAnswer, r.FirstAnswer != ""
	if r.FirstResponse != "" {
		firstAnswer, firstOK = extract.Answer(r.FirstResponse, q.Category)
	}
	secondAnswer, secondOK := r.SecondAnswer, r.SecondAnswer != ""
	if r.SecondResponse != "" {
		secondAnswer, secondOK = extract.Answer(r.SecondResponse, q.Category)
	}

	firstCorrect := match.IsCorrect(firstAnswer, q)
	secondCorrect := match.IsCorrect(secondAnswer, q)
	answerChanged := firstOK && secondOK && !match.Equivalent(firstAnswer, secondAnswer, q.Category)

	polarity := r.FeedbackType
	if polarity == "" {
		polarity = corpus.Negative
	}

	out := r
	out.FirstAnswer = firstAnswer
	out.FirstCorrect = firstCorrect
	out.SecondAnswer = secondAnswer
	out.SecondCorrect = secondCorrect
	out.AnswerChanged = answerChanged
	out.Label = label.ClassifyFeedback(firstOK, firstCorrect, secondOK, secondCorrect, polarity)
	return out, nil
}

// All relabels a batch. Rows that cannot be matched to a catalogue question
// are reported and passed through unchanged, so a relabeling run never
// drops data.
func All(results []trajectory.Result) ([]trajectory.Result, []Failure) {
	out := make([]trajectory.Result, 0, len(results))
	var failures []Failure
	for _, r := range results {
		relabeled, err := Result(r)
		if err != nil {
			failures = append(failures, Failure{TrajectoryID: r.TrajectoryID, Err: err})
			out = append(out, r)
			continue
		}
		out = append(out, relabeled)
	}
	return out, failures
}

// findQuestion resolves a stored row back to its catalogue question: the
// recorded index when it still matches, then question text, then canonical
// answer as a last resort for rows written before indices were recorded.
func findQuestion(r trajectory.Result) (corpus.Question, error) {
	catalogue := corpus.Catalogue()

	if r.QuestionIdx >= 0 && r.QuestionIdx < len(catalogue) {
		if q := catalogue[r.QuestionIdx]; q.Text == r.Question || r.Question == "" {
			return q, nil
		}
	}
	for _, q := range catalogue {
		if q.Text == r.Question {
			return q, nil
		}
	}
	for _, q := range catalogue {
		if q.CorrectAnswer == r.CorrectAnswer {
			return q, nil
		}
	}
	return corpus.Question{}, fmt.Errorf("no catalogue question matches %q", r.Question)
}
