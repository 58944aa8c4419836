// Package questions holds the question bank: the fixed set of forced-choice
// questions a session draws from.
//
// The bank is compiled in (bank.yaml) and parsed once. Each question carries
// its trait-impact rules at definition time, so scoring never has to inspect
// question text for bank questions.
package questions

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var bankYAML []byte

// --- Stage enum ---

// Stage is the coarse phase of a session a question belongs to.
type Stage string

const (
	StageEarly Stage = "early"
	StageMid   Stage = "mid"
	StageLate  Stage = "late"
)

var validStages = map[Stage]bool{
	StageEarly: true,
	StageMid:   true,
	StageLate:  true,
}

// ValidateStage returns an error if the stage is not recognized.
func ValidateStage(s Stage) error {
	if !validStages[s] {
		return fmt.Errorf("invalid stage %q: must be one of: early, mid, late", s)
	}
	return nil
}

// StageFor maps the number of questions already answered to a stage:
// up to 5 is early, 6-10 is mid, anything above is late.
func StageFor(answeredCount int) Stage {
	switch {
	case answeredCount <= 5:
		return StageEarly
	case answeredCount <= 10:
		return StageMid
	default:
		return StageLate
	}
}

// --- Definitions ---

// Example is one concrete phrasing of a question's two poles.
type Example struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// Text joins both halves the way the UI shows them.
func (e Example) Text() string {
	return e.Left + " " + e.Right
}

// Definition is a question in the bank.
type Definition struct {
	ID         int       `json:"id" yaml:"id"`
	Text       string    `json:"text" yaml:"text"`
	LeftLabel  string    `json:"leftLabel" yaml:"left_label"`
	RightLabel string    `json:"rightLabel" yaml:"right_label"`
	Examples   []Example `json:"examples" yaml:"examples"`
	Stage      Stage     `json:"stage" yaml:"stage"`
	Priority   int       `json:"priority" yaml:"priority"`
	Required   bool      `json:"isRequired" yaml:"required"`
	MatchHint  string    `json:"-" yaml:"match_hint"`
	Rules      []Rule    `json:"rules" yaml:"rules"`
}

// Example returns the example at index i modulo the example count. Negative
// indexes wrap from the end.
func (d Definition) Example(i int) Example {
	if len(d.Examples) == 0 {
		return Example{}
	}
	n := len(d.Examples)
	return d.Examples[((i%n)+n)%n]
}

// --- Bank ---

// Bank is the ordered, read-only question list.
type Bank struct {
	questions []Definition
	byID      map[int]int
	byText    map[string]int
	required  int
}

type bankFile struct {
	Questions []Definition `yaml:"questions"`
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the embedded question bank. It panics on malformed
// embedded data.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Parse(bankYAML)
		if err != nil {
			panic(fmt.Sprintf("questions: embedded data: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// Parse decodes and validates bank YAML.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding question bank: %w", err)
	}
	return NewBank(f.Questions)
}

// NewBank indexes and validates a list of definitions. Exactly one
// definition must be flagged required, and id 1 must exist as the
// opening question.
func NewBank(defs []Definition) (*Bank, error) {
	b := &Bank{
		questions: append([]Definition(nil), defs...),
		byID:      make(map[int]int, len(defs)),
		byText:    make(map[string]int, len(defs)),
		required:  -1,
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for i, d := range b.questions {
		if _, dup := b.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", d.ID)
		}
		if strings.TrimSpace(d.Text) == "" {
			return nil, fmt.Errorf("question %d has no text", d.ID)
		}
		if err := ValidateStage(d.Stage); err != nil {
			return nil, fmt.Errorf("question %d: %w", d.ID, err)
		}
		if len(d.Examples) == 0 {
			return nil, fmt.Errorf("question %d has no examples", d.ID)
		}
		for _, r := range d.Rules {
			if err := r.validate(); err != nil {
				return nil, fmt.Errorf("question %d: %w", d.ID, err)
			}
		}
		if d.Required {
			if b.required >= 0 {
				return nil, fmt.Errorf("questions %d and %d are both required", b.questions[b.required].ID, d.ID)
			}
			b.required = i
		}
		b.byID[d.ID] = i
		b.byText[d.Text] = i
	}
	if b.required < 0 {
		return nil, fmt.Errorf("no required question defined")
	}
	if _, ok := b.byID[1]; !ok {
		return nil, fmt.Errorf("opening question (id 1) missing")
	}
	return b, nil
}

// All returns every definition in bank order.
func (b *Bank) All() []Definition {
	return append([]Definition(nil), b.questions...)
}

// Len returns the number of definitions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// First returns the bank's first entry, the last-resort default.
func (b *Bank) First() Definition {
	return b.questions[0]
}

// Opening returns the fixed first question (id 1).
func (b *Bank) Opening() Definition {
	return b.questions[b.byID[1]]
}

// Required returns the mandatory probe question.
func (b *Bank) Required() Definition {
	return b.questions[b.required]
}

// ByID looks up a definition by id.
func (b *Bank) ByID(id int) (Definition, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Definition{}, false
	}
	return b.questions[i], true
}

// ByText looks up a definition by its exact text.
func (b *Bank) ByText(text string) (Definition, bool) {
	i, ok := b.byText[text]
	if !ok {
		return Definition{}, false
	}
	return b.questions[i], true
}

// InStage returns the definitions tagged with stage s, in bank order.
func (b *Bank) InStage(s Stage) []Definition {
	var out []Definition
	for _, d := range b.questions {
		if d.Stage == s {
			out = append(out, d)
		}
	}
	return out
}

// IsRequired reports whether a presented question is the required one,
// matching on id or, for callers that lose ids, on the required question's
// match hint appearing in the text.
func (b *Bank) IsRequired(id int, text string) bool {
	req := b.Required()
	if id == req.ID {
		return true
	}
	return req.MatchHint != "" && strings.Contains(text, req.MatchHint)
}

// RulesFor resolves the impact rules of a presented question: bank
// questions use their static rules (looked up by id, then by text); free
// text that is not in the bank falls back to keyword classification.
func (b *Bank) RulesFor(id int, text string) []Rule {
	if d, ok := b.ByID(id); ok && (text == "" || d.Text == text) {
		return d.Rules
	}
	if d, ok := b.ByText(text); ok {
		return d.Rules
	}
	return Classify(text)
}
