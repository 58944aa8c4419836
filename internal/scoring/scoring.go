// Package scoring turns a session's answers into a trait vector.
//
// Scoring is recomputed from scratch for every call: start every dimension
// at 50, add each answer's rule contributions, apply two adjustments over
// the whole answer set, then clamp to [30,100].
package scoring

import (
	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/traits"
)

// Population adjustment amounts.
const (
	extremeBonus = 10
	leanBonus    = 5
)

// Breakdown explains how a vector was reached.
type Breakdown struct {
	// Vector is the final, clamped result.
	Vector traits.Vector
	// PerQuestion holds each answer's own contribution, in history order.
	PerQuestion []traits.Delta
	// Adjustment is the population-level adjustment over all answers.
	Adjustment traits.Delta
}

// Scorer computes trait vectors using a bank's static rules.
type Scorer struct {
	bank *questions.Bank
}

// New creates a Scorer backed by bank.
func New(bank *questions.Bank) *Scorer {
	return &Scorer{bank: bank}
}

// Score returns the trait vector for history.
func (s *Scorer) Score(history []questions.Answered) traits.Vector {
	return s.Breakdown(history).Vector
}

// Breakdown scores history and keeps the per-question contributions.
// An empty history yields the all-50 base vector.
func (s *Scorer) Breakdown(history []questions.Answered) Breakdown {
	b := Breakdown{Vector: traits.BaseVector()}
	if len(history) == 0 {
		return b
	}

	answers := make([]int, len(history))
	raw := traits.BaseVector()
	b.PerQuestion = make([]traits.Delta, len(history))
	for i, h := range history {
		answers[i] = questions.AnswerOrNeutral(h.Answer)
		b.PerQuestion[i] = questions.Impact(s.bank.RulesFor(h.ID, h.Text), answers[i])
		raw = raw.Add(b.PerQuestion[i])
	}

	b.Adjustment = adjustment(answers)
	b.Vector = raw.Add(b.Adjustment).Clamp()
	return b
}

// adjustment rewards decisive answering and the overall lean of the
// session. Equal left and right counts leave the vector alone.
func adjustment(answers []int) traits.Delta {
	var extreme, left, right int
	for _, a := range answers {
		if a == 1 || a == 5 {
			extreme++
		}
		switch {
		case a <= 2:
			left++
		case a >= 4:
			right++
		}
	}

	var d traits.Delta
	if extreme*2 > len(answers) {
		d.Execution += extremeBonus
		d.Charm += extremeBonus
	}
	switch {
	case right > left:
		d.Humanity += leanBonus
		d.Charm += leanBonus
	case left > right:
		d.Execution += leanBonus
		d.Style += leanBonus
	}
	return d
}
