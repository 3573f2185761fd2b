// Package trajectory drives two-turn exchanges through an injected
// generation capability and labels the outcome. The generation function is
// the only blocking, failure-prone dependency in the engine; everything
// around it is pure.
package trajectory

import (
	"context"
	"fmt"

	"probelab/internal/corpus"
	"probelab/internal/extract"
	"probelab/internal/label"
	"probelab/internal/manifest"
	"probelab/internal/match"
)

// Message roles, mirroring the chat-completions wire convention.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces a model response for an ordered message history. It may
// fail on transient faults; the assembler never retries, it propagates the
// error so the batch layer can skip the spec and continue.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, messages []Message) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, messages []Message) (string, error) {
	return f(ctx, messages)
}

// Run executes one trajectory: ask the question, extract and check the first
// answer, deliver the spec's feedback, extract the second answer, and label
// the exchange. A generation failure aborts only this spec.
func Run(ctx context.Context, spec manifest.TrajectorySpec, polarity corpus.Polarity, gen Generator) (Result, error) {
	catalogue := corpus.Catalogue()
	if spec.QuestionIdx < 0 || spec.QuestionIdx >= len(catalogue) {
		return Result{}, fmt.Errorf("trajectory %s: question index %d out of range [0, %d)",
			spec.TrajectoryID, spec.QuestionIdx, len(catalogue))
	}
	q := catalogue[spec.QuestionIdx]

	messages := []Message{
		{Role: RoleSystem, Content: corpus.SystemPrompt},
		{Role: RoleUser, Content: q.Text},
	}

	firstResponse, err := gen.Generate(ctx, messages)
	if err != nil {
		return Result{}, fmt.Errorf("trajectory %s: first generation: %w", spec.TrajectoryID, err)
	}
	firstAnswer, firstOK := extract.Answer(firstResponse, q.Category)
	firstCorrect := match.IsCorrect(firstAnswer, q)

	messages = append(messages,
		Message{Role: RoleAssistant, Content: firstResponse},
		Message{Role: RoleUser, Content: spec.FeedbackText},
	)

	secondResponse, err := gen.Generate(ctx, messages)
	if err != nil {
		return Result{}, fmt.Errorf("trajectory %s: second generation: %w", spec.TrajectoryID, err)
	}
	secondAnswer, secondOK := extract.Answer(secondResponse, q.Category)
	secondCorrect := match.IsCorrect(secondAnswer, q)

	// A change is only detectable when both extractions succeeded; a miss on
	// either side reports false rather than undefined.
	answerChanged := firstOK && secondOK && !match.Equivalent(firstAnswer, secondAnswer, q.Category)

	class := label.ClassifyFeedback(firstOK, firstCorrect, secondOK, secondCorrect, polarity)

	return Result{
		TrajectoryID:   spec.TrajectoryID,
		Split:          string(spec.Split),
		QuestionIdx:    spec.QuestionIdx,
		FeedbackIdx:    spec.FeedbackIdx,
		Question:       q.Text,
		CorrectAnswer:  q.CorrectAnswer,
		Category:       q.Category,
		FirstResponse:  firstResponse,
		FirstAnswer:    firstAnswer,
		FirstCorrect:   firstCorrect,
		FeedbackType:   polarity,
		Feedback:       spec.FeedbackText,
		SecondResponse: secondResponse,
		SecondAnswer:   secondAnswer,
		SecondCorrect:  secondCorrect,
		AnswerChanged:  answerChanged,
		Label:          class,
	}, nil
}
