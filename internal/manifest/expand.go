package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// TrajectorySpec is the immutable specification of one trajectory to
// generate. Two specs with the same (question index, feedback index, split)
// always carry the same trajectory id, which makes re-generation idempotent.
type TrajectorySpec struct {
	QuestionIdx  int
	FeedbackIdx  int
	FeedbackText string
	Split        SplitName
	TrajectoryID string
}

// FormatTrajectoryID renders an id-format template. Supported placeholders:
// {split}, {question_idx}, {question_idx:03d} (zero-padded), {feedback_idx}.
func FormatTrajectoryID(format string, split SplitName, questionIdx, feedbackIdx int) string {
	r := strings.NewReplacer(
		"{split}", string(split),
		"{question_idx:03d}", fmt.Sprintf("%03d", questionIdx),
		"{question_idx}", strconv.Itoa(questionIdx),
		"{feedback_idx}", strconv.Itoa(feedbackIdx),
	)
	return r.Replace(format)
}

// Expand produces every trajectory spec for a split as the full cross
// product of the split's question indices and the resolved feedback
// templates, in nested order: questions outer (split order), feedback inner
// (template order). Re-expanding the same manifest always yields the same
// sequence; positions in it index external artifact stores.
func (m *Manifest) Expand(name SplitName) ([]TrajectorySpec, error) {
	sp, err := m.Split(name)
	if err != nil {
		return nil, err
	}
	templates, err := m.Feedback.Templates()
	if err != nil {
		return nil, err
	}

	format := m.TrajectoryIDFormat
	if format == "" {
		format = DefaultTrajectoryIDFormat
	}

	specs := make([]TrajectorySpec, 0, len(sp.QuestionIndices)*len(templates))
	for _, qIdx := range sp.QuestionIndices {
		for fIdx, text := range templates {
			specs = append(specs, TrajectorySpec{
				QuestionIdx:  qIdx,
				FeedbackIdx:  fIdx,
				FeedbackText: text,
				Split:        name,
				TrajectoryID: FormatTrajectoryID(format, name, qIdx, fIdx),
			})
		}
	}
	return specs, nil
}
