package quiz

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/report"
)

// Simulation is one full session driven through both operations.
type Simulation struct {
	Transcript string
	Envelope   *report.Envelope
}

// Simulate plays a full session the way a client does: it asks for each
// question with the accumulated answers and history, answers from the
// given values (cycled), formats the transcript and requests the report.
func (s *Service) Simulate(ctx context.Context, answers []int) (*Simulation, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: at least one answer is required", ErrInvalidRequest)
	}
	for _, a := range answers {
		if !questions.ValidAnswer(a) {
			return nil, fmt.Errorf("%w: answer %d is outside 1-5", ErrInvalidRequest, a)
		}
	}

	given := make(map[string]int, s.total)
	refs := make([]QuestionRef, 0, s.total)
	history := make([]questions.Answered, 0, s.total)

	for count := 0; count < s.total; count++ {
		n := count
		resp, err := s.NextQuestion(ctx, NextQuestionRequest{
			Answers:         given,
			QuestionCount:   &n,
			QuestionHistory: refs,
		})
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", count+1, err)
		}

		q := resp.Question
		a := answers[count%len(answers)]
		given[strconv.Itoa(count+1)] = a
		refs = append(refs, QuestionRef{ID: q.ID, Text: q.Text, LeftLabel: q.LeftLabel, RightLabel: q.RightLabel})
		history = append(history, questions.Answered{
			ID:         q.ID,
			Text:       q.Text,
			LeftLabel:  q.LeftLabel,
			RightLabel: q.RightLabel,
			Example:    q.Example,
			Answer:     a,
		})
	}

	transcript, err := s.FormatTranscript(history)
	if err != nil {
		return nil, fmt.Errorf("formatting transcript: %w", err)
	}
	env, err := s.FinalReport(ctx, FinalReportRequest{Transcript: transcript})
	if err != nil {
		return nil, err
	}
	return &Simulation{Transcript: transcript, Envelope: env}, nil
}
