package questions

import (
	"reflect"
	"strings"
	"testing"

	"github.com/HendryAvila/ijin/internal/traits"
)

// --- Embedded bank ---

func TestDefault_Loads21Questions(t *testing.T) {
	b := Default()
	if b.Len() != 21 {
		t.Fatalf("Default().Len() = %d, want 21", b.Len())
	}
}

func TestDefault_RequiredIsID21(t *testing.T) {
	req := Default().Required()
	if req.ID != 21 {
		t.Errorf("Required().ID = %d, want 21", req.ID)
	}
	if req.Stage != StageMid {
		t.Errorf("Required().Stage = %s, want mid", req.Stage)
	}
	if req.MatchHint == "" || !strings.Contains(req.Text, req.MatchHint) {
		t.Errorf("match hint %q should be a substring of %q", req.MatchHint, req.Text)
	}
}

func TestDefault_StageSizes(t *testing.T) {
	tests := []struct {
		stage Stage
		want  int
	}{
		{StageEarly, 7},
		{StageMid, 8}, // includes the required question
		{StageLate, 6},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			if got := len(Default().InStage(tt.stage)); got != tt.want {
				t.Errorf("InStage(%s) = %d questions, want %d", tt.stage, got, tt.want)
			}
		})
	}
}

func TestDefault_OpeningQuestion(t *testing.T) {
	q := Default().Opening()
	if q.ID != 1 {
		t.Fatalf("Opening().ID = %d, want 1", q.ID)
	}
	if len(q.Examples) != 3 {
		t.Errorf("opening question has %d examples, want 3", len(q.Examples))
	}
}

// The static rules attached to each bank question must agree with what the
// keyword classifier derives from the question text.
func TestDefault_StaticRulesMatchClassifier(t *testing.T) {
	for _, q := range Default().All() {
		got := q.Rules
		want := Classify(q.Text)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("question %d (%s): rules = %+v, classifier = %+v", q.ID, q.Text, got, want)
		}
	}
}

func TestDefault_RulesPerQuestion(t *testing.T) {
	tests := []struct {
		id   int
		want []Rule
	}{
		{1, nil},
		{2, []Rule{{traits.Execution, 6, 3}}},
		{3, []Rule{{traits.Style, 6, 3}, {traits.Charm, 6, 3}}},
		{9, []Rule{{traits.Humanity, 6, 3}}},
		{14, []Rule{{traits.Charm, 6, 3}}},
		{15, []Rule{{traits.Charm, 6, 3}}},
		{16, []Rule{{traits.Execution, 6, 3}}},
		{17, []Rule{{traits.Style, 6, 3}}},
		{19, []Rule{{traits.Humanity, 6, 3}}},
		{21, []Rule{{traits.Humanity, -8, 5}, {traits.Charm, -3, 5}}},
	}
	for _, tt := range tests {
		q, ok := Default().ByID(tt.id)
		if !ok {
			t.Fatalf("ByID(%d) not found", tt.id)
		}
		if len(tt.want) == 0 && len(q.Rules) == 0 {
			continue
		}
		if !reflect.DeepEqual(q.Rules, tt.want) {
			t.Errorf("question %d rules = %+v, want %+v", tt.id, q.Rules, tt.want)
		}
	}
}

// --- StageFor ---

func TestStageFor(t *testing.T) {
	tests := []struct {
		count int
		want  Stage
	}{
		{0, StageEarly},
		{1, StageEarly},
		{5, StageEarly},
		{6, StageMid},
		{10, StageMid},
		{11, StageLate},
		{40, StageLate},
	}
	for _, tt := range tests {
		if got := StageFor(tt.count); got != tt.want {
			t.Errorf("StageFor(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

// --- Lookups ---

func TestBank_IsRequired(t *testing.T) {
	b := Default()
	tests := []struct {
		name string
		id   int
		text string
		want bool
	}{
		{"by id", 21, "", true},
		{"by hint with lost id", 0, "あなたには奥さんがいます。その上で何が大切だと考えますか？", true},
		{"other question", 3, "リーダーシップのスタイルは？", false},
		{"empty", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsRequired(tt.id, tt.text); got != tt.want {
				t.Errorf("IsRequired(%d, %q) = %v, want %v", tt.id, tt.text, got, tt.want)
			}
		})
	}
}

func TestBank_RulesFor(t *testing.T) {
	b := Default()

	// Known text without id resolves to the static rules.
	got := b.RulesFor(0, "困難な状況では？")
	if !reflect.DeepEqual(got, []Rule{{traits.Execution, 6, 3}}) {
		t.Errorf("RulesFor(bank text) = %+v", got)
	}

	// Unknown text falls back to the classifier.
	got = b.RulesFor(0, "第一印象で大切なのは？")
	if !reflect.DeepEqual(got, []Rule{{traits.Appearance, 10, 3}}) {
		t.Errorf("RulesFor(free text) = %+v", got)
	}

	// An id paired with foreign text must not borrow the bank rules.
	got = b.RulesFor(2, "自由についてどう思う？")
	want := []Rule{{traits.Execution, -3, 5}, {traits.Humanity, 3, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RulesFor(id with foreign text) = %+v, want %+v", got, want)
	}
}

func TestDefinition_ExampleWraps(t *testing.T) {
	q := Default().Opening()
	if q.Example(4) != q.Examples[1] {
		t.Error("Example(4) should wrap to index 1 for 3 examples")
	}
	if q.Example(-1) != q.Examples[2] {
		t.Error("Example(-1) should wrap to the last example")
	}
	if !strings.HasPrefix(q.Example(0).Text(), q.Examples[0].Left+" ") {
		t.Error("Example.Text should join left and right with a space")
	}
}

// --- Validation ---

func TestNewBank_Errors(t *testing.T) {
	ex := []Example{{Left: "l", Right: "r"}}
	tests := []struct {
		name string
		defs []Definition
	}{
		{"empty", nil},
		{"no required", []Definition{{ID: 1, Text: "a", Stage: StageEarly, Examples: ex}}},
		{"two required", []Definition{
			{ID: 1, Text: "a", Stage: StageEarly, Examples: ex, Required: true},
			{ID: 2, Text: "b", Stage: StageMid, Examples: ex, Required: true},
		}},
		{"duplicate id", []Definition{
			{ID: 1, Text: "a", Stage: StageEarly, Examples: ex, Required: true},
			{ID: 1, Text: "b", Stage: StageMid, Examples: ex},
		}},
		{"bad stage", []Definition{{ID: 1, Text: "a", Stage: "final", Examples: ex, Required: true}}},
		{"no examples", []Definition{{ID: 1, Text: "a", Stage: StageEarly, Required: true}}},
		{"no opening", []Definition{{ID: 2, Text: "a", Stage: StageEarly, Examples: ex, Required: true}}},
		{"bad rule", []Definition{{ID: 1, Text: "a", Stage: StageEarly, Examples: ex, Required: true,
			Rules: []Rule{{Trait: "luck", Coefficient: 1, Pivot: 3}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBank(tt.defs); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
