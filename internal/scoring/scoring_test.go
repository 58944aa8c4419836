package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/traits"
)

func newScorer() *Scorer {
	return New(questions.Default())
}

func asked(id, answer int) questions.Answered {
	q, _ := questions.Default().ByID(id)
	return questions.Answered{ID: q.ID, Text: q.Text, LeftLabel: q.LeftLabel, RightLabel: q.RightLabel, Answer: answer}
}

// --- Base cases ---

func TestScore_EmptyIsBase(t *testing.T) {
	got := newScorer().Score(nil)
	want := traits.Vector{Execution: 50, Humanity: 50, Style: 50, Charm: 50, Appearance: 50}
	if got != want {
		t.Errorf("Score(nil) = %+v, want %+v", got, want)
	}
}

func TestScore_WorkedExample(t *testing.T) {
	history := []questions.Answered{
		asked(2, 5), // execution +12
		asked(3, 1), // style -12, charm -12
		asked(9, 4), // humanity +6
	}
	got := newScorer().Score(history)
	// extremes 2/3 -> execution, charm +10; right 2 > left 1 -> humanity, charm +5
	want := traits.Vector{Execution: 72, Humanity: 61, Style: 38, Charm: 53, Appearance: 50}
	if got != want {
		t.Errorf("Score = %+v, want %+v", got, want)
	}
}

func TestScore_AllNeutralSession(t *testing.T) {
	var history []questions.Answered
	for _, id := range []int{1, 2, 3, 4, 5, 21, 8, 9, 10, 11, 12, 15, 16, 17, 18} {
		history = append(history, asked(id, 3))
	}
	got := newScorer().Score(history)
	// Only the fidelity question moves at the midpoint: humanity +16, charm +6.
	want := traits.Vector{Execution: 50, Humanity: 66, Style: 50, Charm: 56, Appearance: 50}
	if got != want {
		t.Errorf("Score(all 3) = %+v, want %+v", got, want)
	}
}

// --- Fidelity inversion ---

func TestScore_FidelityAffirmingRaisesHumanity(t *testing.T) {
	base := newScorer().Score([]questions.Answered{asked(1, 3)})
	got := newScorer().Score([]questions.Answered{asked(1, 3), asked(21, 1)})
	if got.Humanity <= base.Humanity {
		t.Errorf("humanity with fidelity-affirming answer = %d, want > %d", got.Humanity, base.Humanity)
	}
	if got.Humanity != 82 {
		t.Errorf("humanity = %d, want 82 (50 + (5-1)*8)", got.Humanity)
	}
}

func TestScore_FidelityScaleIsInverted(t *testing.T) {
	s := newScorer()
	prev := 101
	for a := 1; a <= 5; a++ {
		bd := s.Breakdown([]questions.Answered{asked(21, a)})
		h := bd.PerQuestion[0].Humanity
		if h >= prev {
			t.Errorf("answer %d humanity impact %d should be below answer %d's %d", a, h, a-1, prev)
		}
		prev = h
	}
}

// --- Population adjustments ---

func TestAdjustment(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    traits.Delta
	}{
		{"neutral", []int{3, 3, 3}, traits.Delta{}},
		{"balanced lean", []int{2, 4, 3}, traits.Delta{}},
		{"right lean", []int{4, 4, 3}, traits.Delta{Humanity: 5, Charm: 5}},
		{"left lean", []int{2, 2, 3}, traits.Delta{Execution: 5, Style: 5}},
		{"extreme majority right", []int{5, 5, 3}, traits.Delta{Execution: 10, Humanity: 5, Charm: 15}},
		{"extreme exactly half", []int{1, 5, 3, 3}, traits.Delta{}},
		{"extreme majority balanced", []int{1, 5, 1, 5}, traits.Delta{Execution: 10, Charm: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustment(tt.answers); got != tt.want {
				t.Errorf("adjustment(%v) = %+v, want %+v", tt.answers, got, tt.want)
			}
		})
	}
}

// --- Clamping and robustness ---

func TestScore_ClampsToRange(t *testing.T) {
	high := make([]questions.Answered, 6)
	low := make([]questions.Answered, 6)
	for i := range high {
		high[i] = questions.Answered{Text: "第一印象で大切なのは？", Answer: 5}
		low[i] = questions.Answered{Text: "第一印象で大切なのは？", Answer: 1}
	}
	if got := newScorer().Score(high).Appearance; got != traits.Max {
		t.Errorf("appearance after +120 = %d, want %d", got, traits.Max)
	}
	if got := newScorer().Score(low).Appearance; got != traits.Min {
		t.Errorf("appearance after -120 = %d, want %d", got, traits.Min)
	}
}

func TestScore_InvalidAnswerTreatedAsNeutral(t *testing.T) {
	got := newScorer().Score([]questions.Answered{asked(2, 0), asked(2, 9)})
	if got != traits.BaseVector() {
		t.Errorf("Score(invalid answers) = %+v, want base", got)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	all := questions.Default().All()
	freeText := []string{"自由と論理、どちらが大切？", "外見と年齢について", "愛とリーダーシップ", "奥さんと集団"}

	s := newScorer()
	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.IntN(30)
		history := make([]questions.Answered, n)
		for i := range history {
			if rng.IntN(4) == 0 {
				history[i] = questions.Answered{Text: freeText[rng.IntN(len(freeText))], Answer: 1 + rng.IntN(5)}
				continue
			}
			q := all[rng.IntN(len(all))]
			history[i] = questions.Answered{ID: q.ID, Text: q.Text, Answer: 1 + rng.IntN(5)}
		}
		v := s.Score(history)
		for _, d := range traits.Dimensions() {
			if x := v.Get(d); x < traits.Min || x > traits.Max {
				t.Fatalf("trial %d: %s = %d out of [%d,%d]", trial, d, x, traits.Min, traits.Max)
			}
		}
	}
}

// --- Breakdown ---

func TestBreakdown_SumsToUnclampedVector(t *testing.T) {
	history := []questions.Answered{asked(2, 4), asked(3, 2), asked(21, 2), asked(15, 5)}
	bd := newScorer().Breakdown(history)
	if len(bd.PerQuestion) != len(history) {
		t.Fatalf("PerQuestion has %d entries, want %d", len(bd.PerQuestion), len(history))
	}
	sum := bd.Adjustment
	for _, d := range bd.PerQuestion {
		sum = sum.Plus(d)
	}
	if got := traits.BaseVector().Add(sum).Clamp(); got != bd.Vector {
		t.Errorf("base + impacts + adjustment = %+v, want %+v", got, bd.Vector)
	}
}

func TestBreakdown_QuestionWithoutRulesHasZeroImpact(t *testing.T) {
	bd := newScorer().Breakdown([]questions.Answered{asked(1, 5)})
	if bd.PerQuestion[0] != (traits.Delta{}) {
		t.Errorf("impact of rule-less question = %+v, want zero", bd.PerQuestion[0])
	}
}
