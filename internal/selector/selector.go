// Package selector decides which question a session asks next.
//
// Selection is a pure function of the answer history the caller passes in:
// the selector keeps no session state between calls. Given the same history
// and count it always returns the same question and example.
package selector

import (
	"fmt"
	"math"
	"sort"

	"github.com/HendryAvila/ijin/internal/questions"
)

// Required-question scheduling window, in answered questions.
const (
	requiredWindowStart = 5
	requiredWindowEnd   = 10
)

// topCandidates is how many of the best-scored questions the selector
// rotates through.
const topCandidates = 3

// Selection is the selector's answer for one call.
type Selection struct {
	Question     questions.Definition
	ExampleIndex int
	Stage        questions.Stage
	Stats        Stats
	Reason       string
}

// Example returns the chosen example phrasing.
func (s Selection) Example() questions.Example {
	return s.Question.Example(s.ExampleIndex)
}

// Selector picks questions from a bank.
type Selector struct {
	bank *questions.Bank
}

// New creates a Selector over the given bank.
func New(bank *questions.Bank) *Selector {
	return &Selector{bank: bank}
}

// Next returns the question to present after answeredCount questions have
// been answered. history lists the questions already presented, oldest
// first; its answers feed the heuristics.
func (s *Selector) Next(history []questions.Answered, answeredCount int) Selection {
	if answeredCount <= 0 {
		return Selection{
			Question:     s.bank.Opening(),
			ExampleIndex: 0,
			Stage:        questions.StageEarly,
			Reason:       "最初の質問として、基本的な価値観を探ります。",
		}
	}

	st := Summarize(answersOf(history))
	stage := questions.StageFor(answeredCount)
	used := collectUsage(s.bank, history)

	required := s.bank.Required()
	requiredDue := !used.required && answeredCount >= requiredWindowStart && answeredCount <= requiredWindowEnd

	available := s.bank.InStage(stage)
	if requiredDue {
		available = prependRequired(required, available)
	}

	var unused []questions.Definition
	for _, q := range available {
		if !used.contains(q) {
			unused = append(unused, q)
		}
	}

	var chosen questions.Definition
	found := false
	if requiredDue {
		for _, q := range unused {
			if q.ID == required.ID {
				chosen, found = q, true
				break
			}
		}
	}

	if !found {
		pool := candidatePool(available, unused, used)
		if len(pool) > 0 {
			chosen, found = pickScored(pool, answeredCount, st), true
		}
	}
	if !found {
		chosen = s.bank.First()
	}

	return Selection{
		Question:     chosen,
		ExampleIndex: exampleIndex(chosen, answeredCount, st),
		Stage:        stage,
		Stats:        st,
		Reason:       reason(st, stage),
	}
}

// candidatePool applies the reuse fallbacks: unused questions first, then
// the stage's questions minus the one asked last, then the whole stage.
func candidatePool(available, unused []questions.Definition, used usage) []questions.Definition {
	if len(unused) > 0 {
		return unused
	}
	var pool []questions.Definition
	for _, q := range available {
		if !used.isLast(q) {
			pool = append(pool, q)
		}
	}
	if len(pool) > 0 {
		return pool
	}
	return available
}

type scored struct {
	q     questions.Definition
	score float64
}

// pickScored ranks candidates by heuristic and rotates through the top
// three by answeredCount.
func pickScored(pool []questions.Definition, answeredCount int, st Stats) questions.Definition {
	ranked := make([]scored, len(pool))
	for i, q := range pool {
		ranked[i] = scored{q: q, score: heuristic(q, answeredCount, st)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := ranked
	if len(top) > topCandidates {
		top = top[:topCandidates]
	}
	return top[answeredCount%len(top)].q
}

// heuristic scores a candidate question. Lower priority numbers are the
// basic questions, higher ones probe deeper.
func heuristic(q questions.Definition, answeredCount int, st Stats) float64 {
	p := q.Priority
	score := 0.0

	// Depth grows with the session.
	switch {
	case answeredCount <= 3:
		score += pick(p <= 3, 10, 5)
	case answeredCount <= 7:
		score += pick(p >= 4 && p <= 6, 10, 5)
	default:
		score += pick(p >= 5, 10, 5)
	}

	// Lean of the whole session.
	switch {
	case st.Average <= 2.5:
		score += pick(p <= 3, 15, 5)
	case st.Average >= 3.5:
		score += pick(p >= 4, 15, 5)
	default:
		score += pick(p >= 3 && p <= 5, 15, 5)
	}

	// Lean of the latest answers relative to the session.
	switch trend := st.Trend(); {
	case trend > 0.5:
		score += pick(p >= 4, 10, 0)
	case trend < -0.5:
		score += pick(p <= 3, 10, 0)
	}

	// Consistent answerers get deeper questions.
	if st.Variance < 1.5 && answeredCount > 5 {
		score += pick(p >= 5, 10, 0)
	}

	// Deterministic tie-break, always below one point.
	score += float64(mod(answeredCount*7+q.ID, 100)) / 100

	return score
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}

// exampleIndex varies the example phrasing across the session. The second
// question always uses the second example so it differs from the opening.
func exampleIndex(q questions.Definition, answeredCount int, st Stats) int {
	n := len(q.Examples)
	if n == 0 {
		return 0
	}
	if answeredCount == 1 {
		return 1 % n
	}
	seed := answeredCount*7 + q.ID + int(math.Floor(st.Average*3))
	return mod(seed, n)
}

// mod is the non-negative remainder. Seeds built from a huge answeredCount
// wrap around and turn negative.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

func reason(st Stats, stage questions.Stage) string {
	focus := "深い価値観"
	switch stage {
	case questions.StageEarly:
		focus = "基本的な価値観"
	case questions.StageMid:
		focus = "特定の領域"
	}
	return fmt.Sprintf(
		"これまでの回答パターン（平均: %.1f点、左寄り: %d問、中間: %d問、右寄り: %d問）に基づいて、%sを探る質問を生成しました。",
		st.Average, st.Left, st.Middle, st.Right, focus,
	)
}

// --- history bookkeeping ---

type usage struct {
	ids      map[int]bool
	texts    map[string]bool
	lastID   int
	lastText string
	required bool
}

func collectUsage(bank *questions.Bank, history []questions.Answered) usage {
	u := usage{ids: make(map[int]bool), texts: make(map[string]bool)}
	for _, h := range history {
		if h.ID > 0 {
			u.ids[h.ID] = true
			u.lastID = h.ID
		}
		if h.Text != "" {
			u.texts[h.Text] = true
			u.lastText = h.Text
		}
		if bank.IsRequired(h.ID, h.Text) {
			u.required = true
		}
	}
	return u
}

func (u usage) contains(q questions.Definition) bool {
	return u.ids[q.ID] || u.texts[q.Text]
}

func (u usage) isLast(q questions.Definition) bool {
	return (u.lastID != 0 && q.ID == u.lastID) || (u.lastText != "" && q.Text == u.lastText)
}

func prependRequired(required questions.Definition, stage []questions.Definition) []questions.Definition {
	out := make([]questions.Definition, 0, len(stage)+1)
	out = append(out, required)
	for _, q := range stage {
		if q.ID != required.ID {
			out = append(out, q)
		}
	}
	return out
}

func answersOf(history []questions.Answered) []int {
	var out []int
	for _, h := range history {
		if questions.ValidAnswer(h.Answer) {
			out = append(out, h.Answer)
		}
	}
	return out
}
