package trajectory

import (
	"strconv"

	"probelab/internal/corpus"
	"probelab/internal/label"
)

// Result is the immutable output record of one trajectory. It flattens to
// scalar columns for tabular storage; the label serializes as its string
// tag.
type Result struct {
	TrajectoryID   string
	Split          string
	QuestionIdx    int
	FeedbackIdx    int
	Question       string
	CorrectAnswer  string
	Category       corpus.Category
	FirstResponse  string
	FirstAnswer    string
	FirstCorrect   bool
	FeedbackType   corpus.Polarity
	Feedback       string
	SecondResponse string
	SecondAnswer   string
	SecondCorrect  bool
	AnswerChanged  bool
	Label          label.FeedbackClass
}

// CSVHeader is the column order for tabular export. Kept stable so existing
// analysis notebooks keep working against re-generated datasets.
var CSVHeader = []string{
	"trajectory_id", "split", "question_idx", "feedback_idx",
	"question", "correct_answer", "category",
	"first_response", "first_answer", "first_correct",
	"feedback_type", "feedback",
	"second_response", "second_answer", "second_correct",
	"answer_changed", "label",
}

// CSVRow renders the result in CSVHeader order.
func (r Result) CSVRow() []string {
	return []string{
		r.TrajectoryID,
		r.Split,
		strconv.Itoa(r.QuestionIdx),
		strconv.Itoa(r.FeedbackIdx),
		r.Question,
		r.CorrectAnswer,
		string(r.Category),
		r.FirstResponse,
		r.FirstAnswer,
		strconv.FormatBool(r.FirstCorrect),
		string(r.FeedbackType),
		r.Feedback,
		r.SecondResponse,
		r.SecondAnswer,
		strconv.FormatBool(r.SecondCorrect),
		strconv.FormatBool(r.AnswerChanged),
		string(r.Label),
	}
}
