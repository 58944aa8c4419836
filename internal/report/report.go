// Package report turns a scored session into the final report: benchmark
// figures, labels, per-question analysis and the narrative texts.
package report

import (
	"fmt"
	"math"

	"github.com/HendryAvila/ijin/internal/matching"
	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/scoring"
	"github.com/HendryAvila/ijin/internal/templates"
	"github.com/HendryAvila/ijin/internal/traits"
)

// Envelope is the response shape returned to clients.
type Envelope struct {
	IsFinished bool    `json:"isFinished"`
	Result     *Report `json:"result"`
}

// Report is the complete final report for one session.
type Report struct {
	ValueType        matching.ValueType `json:"valueType"`
	UserArchetype    string             `json:"userArchetype"`
	CoreValue        string             `json:"coreValue"`
	Benchmarks       []Benchmark        `json:"benchmarks"`
	Scores           traits.Vector      `json:"scores"`
	QuestionAnalysis []QuestionAnalysis `json:"questionAnalysis"`
	PositioningText  string             `json:"positioningText"`
	ActionableAdvice string             `json:"actionableAdvice"`
}

// Benchmark is one of the top matched profiles. Superiority and Gaps are
// only set on rank 1.
type Benchmark struct {
	Rank        int           `json:"rank"`
	Name        string        `json:"name"`
	ValueType   string        `json:"valueType"`
	Similarity  float64       `json:"similarity"`
	Reason      string        `json:"reason"`
	Superiority string        `json:"superiority,omitempty"`
	Gaps        *traits.Delta `json:"gaps,omitempty"`
}

// QuestionAnalysis explains one answered question.
type QuestionAnalysis struct {
	QuestionNumber   int          `json:"questionNumber"`
	QuestionText     string       `json:"questionText"`
	FullQuestionText string       `json:"fullQuestionText"`
	LeftLabel        string       `json:"leftLabel"`
	RightLabel       string       `json:"rightLabel"`
	UserAnswer       int          `json:"userAnswer"`
	SelectedChoice   string       `json:"selectedChoice"`
	Interpretation   string       `json:"interpretation"`
	Impact           traits.Delta `json:"impact"`
}

// Builder assembles reports.
type Builder struct {
	scorer   *scoring.Scorer
	matcher  *matching.Matcher
	renderer templates.Renderer
}

// NewBuilder creates a Builder from its collaborators.
func NewBuilder(scorer *scoring.Scorer, matcher *matching.Matcher, renderer templates.Renderer) *Builder {
	return &Builder{scorer: scorer, matcher: matcher, renderer: renderer}
}

// FromTranscript parses text and builds its report. Text without a single
// readable answer still yields a full report for the neutral vector.
func (b *Builder) FromTranscript(text string) (*Report, error) {
	return b.Build(ParseTranscript(text))
}

// Build scores the transcript and assembles the report.
func (b *Builder) Build(t Transcript) (*Report, error) {
	history := t.History()

	var bd scoring.Breakdown
	if t.HasAnswers() {
		bd = b.scorer.Breakdown(history)
	} else {
		bd = b.scorer.Breakdown(nil)
		bd.PerQuestion = make([]traits.Delta, len(history))
	}

	res := b.matcher.Match(bd.Vector)
	if len(res.Top) == 0 {
		return nil, fmt.Errorf("matching produced no benchmarks")
	}

	advice, err := b.advice(res)
	if err != nil {
		return nil, err
	}

	return &Report{
		ValueType:        res.ValueType,
		UserArchetype:    res.Archetype,
		CoreValue:        res.CoreValue,
		Benchmarks:       benchmarks(res),
		Scores:           res.Vector,
		QuestionAnalysis: analyze(history, bd.PerQuestion),
		PositioningText:  positioning(res),
		ActionableAdvice: advice,
	}, nil
}

// FormatTranscript renders history with the builder's renderer.
func (b *Builder) FormatTranscript(history []questions.Answered) (string, error) {
	return FormatTranscript(b.renderer, history)
}

func benchmarks(res matching.Result) []Benchmark {
	out := make([]Benchmark, len(res.Top))
	for i, m := range res.Top {
		bm := Benchmark{
			Rank:       m.Rank,
			Name:       m.Profile.Name,
			ValueType:  m.Profile.Label(),
			Similarity: math.Round(m.Similarity*10) / 10,
			Reason:     matchReason(i, m, res.Vector),
		}
		if i == 0 {
			gaps := res.Gaps
			bm.Gaps = &gaps
			bm.Superiority = superiority(m.Profile.Name, gaps)
		}
		out[i] = bm
	}
	return out
}

// previewRunes is how much of a question text the analysis preview keeps.
const previewRunes = 50

func analyze(history []questions.Answered, impacts []traits.Delta) []QuestionAnalysis {
	out := make([]QuestionAnalysis, len(history))
	for i, h := range history {
		left, right := h.LeftLabel, h.RightLabel
		if left == "" {
			left = DefaultLeftLabel
		}
		if right == "" {
			right = DefaultRightLabel
		}
		a := questions.AnswerOrNeutral(h.Answer)
		choice, interp := interpret(a, left, right)
		out[i] = QuestionAnalysis{
			QuestionNumber:   i + 1,
			QuestionText:     preview(h.Text),
			FullQuestionText: h.Text,
			LeftLabel:        left,
			RightLabel:       right,
			UserAnswer:       a,
			SelectedChoice:   choice,
			Interpretation:   interp,
			Impact:           impacts[i],
		}
	}
	return out
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewRunes {
		return text
	}
	return string(r[:previewRunes]) + "..."
}

func interpret(a int, left, right string) (choice, interpretation string) {
	switch a {
	case 1:
		return left, fmt.Sprintf("「%s」を強く支持", left)
	case 2:
		return left, fmt.Sprintf("「%s」寄り", left)
	case 4:
		return right, fmt.Sprintf("「%s」寄り", right)
	case 5:
		return right, fmt.Sprintf("「%s」を強く支持", right)
	default:
		return "中間", fmt.Sprintf("「%s」と「%s」の中間", left, right)
	}
}
