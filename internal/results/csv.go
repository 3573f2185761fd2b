package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"probelab/internal/corpus"
	"probelab/internal/label"
	"probelab/internal/trajectory"
)

// WriteCSV writes results with the stable header from trajectory.CSVHeader.
func WriteCSV(w io.Writer, results []trajectory.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trajectory.CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("failed to write row %s: %w", r.TrajectoryID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes results to a file path.
func WriteCSVFile(path string, results []trajectory.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, results)
}

// ReadCSV parses a trajectory CSV written by WriteCSV. Columns are resolved
// by header name, so column order in the file does not matter.
func ReadCSV(r io.Reader) ([]trajectory.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range trajectory.CSVHeader {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []trajectory.Result
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		qIdx, err := strconv.Atoi(field(row, "question_idx"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad question_idx: %w", line, err)
		}
		fIdx, err := strconv.Atoi(field(row, "feedback_idx"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad feedback_idx: %w", line, err)
		}

		out = append(out, trajectory.Result{
			TrajectoryID:   field(row, "trajectory_id"),
			Split:          field(row, "split"),
			QuestionIdx:    qIdx,
			FeedbackIdx:    fIdx,
			Question:       field(row, "question"),
			CorrectAnswer:  field(row, "correct_answer"),
			Category:       corpus.Category(field(row, "category")),
			FirstResponse:  field(row, "first_response"),
			FirstAnswer:    field(row, "first_answer"),
			FirstCorrect:   field(row, "first_correct") == "true",
			FeedbackType:   corpus.Polarity(field(row, "feedback_type")),
			Feedback:       field(row, "feedback"),
			SecondResponse: field(row, "second_response"),
			SecondAnswer:   field(row, "second_answer"),
			SecondCorrect:  field(row, "second_correct") == "true",
			AnswerChanged:  field(row, "answer_changed") == "true",
			Label:          label.FeedbackClass(field(row, "label")),
		})
	}
	return out, nil
}

// ReadCSVFile parses a trajectory CSV from a file path.
func ReadCSVFile(path string) ([]trajectory.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WritePairCSV writes paired-question results for the contradiction task.
// Response excerpts are truncated the way the analysis notebooks expect.
func WritePairCSV(w io.Writer, results []label.PairResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"pair_id", "entity_x", "entity_y",
		"answer_a", "answer_b", "ground_truth_a", "ground_truth_b",
		"tie", "is_contradiction", "classification",
		"response_a_excerpt", "response_b_excerpt", "notes",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		answerA := r.AnswerA
		if answerA == "" {
			answerA = "NONE"
		}
		answerB := r.AnswerB
		if answerB == "" {
			answerB = "NONE"
		}
		row := []string{
			r.PairID, r.EntityX, r.EntityY,
			answerA, answerB, r.GroundTruthA, r.GroundTruthB,
			strconv.FormatBool(r.Tie), strconv.FormatBool(r.IsContradiction), string(r.Class),
			excerpt(r.ResponseA), excerpt(r.ResponseB), r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %s: %w", r.PairID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// excerpt flattens newlines and truncates on a rune boundary so multibyte
// responses never produce invalid UTF-8 in the CSV.
func excerpt(s string) string {
	const limit = 200
	runes := []rune(s)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	for i, r := range runes {
		if r == '\n' {
			runes[i] = ' '
		}
	}
	return string(runes)
}
