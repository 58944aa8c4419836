package questions

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/ijin/internal/traits"
)

// Rule is one trait impact of an answer:
// contribution = Coefficient * (answer - Pivot).
//
// A pivot of 3 gives a scale centered on the neutral answer; a pivot of 5
// with a negative coefficient gives an inverted scale where the left pole
// (answer 1) contributes most.
type Rule struct {
	Trait       traits.Dimension `json:"trait" yaml:"trait"`
	Coefficient int              `json:"coefficient" yaml:"coefficient"`
	Pivot       int              `json:"pivot" yaml:"pivot"`
}

// Apply returns the contribution of a single answer.
func (r Rule) Apply(answer int) int {
	return r.Coefficient * (answer - r.Pivot)
}

func (r Rule) validate() error {
	if _, err := traits.ParseDimension(string(r.Trait)); err != nil {
		return err
	}
	if r.Pivot < 1 || r.Pivot > 5 {
		return fmt.Errorf("rule pivot %d out of range 1..5", r.Pivot)
	}
	return nil
}

// Impact sums every rule's contribution for one answer.
func Impact(rules []Rule, answer int) traits.Delta {
	var d traits.Delta
	for _, r := range rules {
		d = d.Plus(traits.Delta(traits.Vector{}.With(r.Trait, r.Apply(answer))))
	}
	return d
}

// --- Keyword classification ---

// keywordGroup attaches rules to any text containing one of its keywords.
type keywordGroup struct {
	name     string
	keywords []string
	rules    []Rule
	// suppressedBy names a group that, when matched, disables this one.
	suppressedBy string
}

// keywordGroups is evaluated in order; groups are not mutually exclusive
// except where suppressedBy says so.
var keywordGroups = []keywordGroup{
	{
		name:     "execution",
		keywords: []string{"挑戦", "決断", "実行", "目標", "困難"},
		rules:    []Rule{{traits.Execution, 6, 3}},
	},
	{
		name:     "fidelity",
		keywords: []string{"奥さん", "奥様"},
		rules:    []Rule{{traits.Humanity, -8, 5}, {traits.Charm, -3, 5}},
	},
	{
		name:         "humanity",
		keywords:     []string{"人間", "共感", "協調", "集団", "愛"},
		rules:        []Rule{{traits.Humanity, 6, 3}},
		suppressedBy: "fidelity",
	},
	{
		name:     "style",
		keywords: []string{"表現", "コミュニケーション", "伝える", "リーダー"},
		rules:    []Rule{{traits.Style, 6, 3}},
	},
	{
		name:     "charm",
		keywords: []string{"影響", "カリスマ", "リーダー", "憧れ"},
		rules:    []Rule{{traits.Charm, 6, 3}},
	},
	{
		name:     "appearance",
		keywords: []string{"外見", "顔面", "身だしなみ", "第一印象", "年齢"},
		rules:    []Rule{{traits.Appearance, 10, 3}},
	},
	{
		name:     "freedom",
		keywords: []string{"自由", "独立"},
		rules:    []Rule{{traits.Execution, -3, 5}, {traits.Humanity, 3, 3}},
	},
	{
		name:     "logic",
		keywords: []string{"論理", "データ"},
		rules:    []Rule{{traits.Execution, -4, 5}, {traits.Humanity, 4, 3}},
	},
}

// Classify derives impact rules from free question text by case-insensitive
// keyword matching. It is only used for questions that are not in the bank.
func Classify(text string) []Rule {
	lower := strings.ToLower(text)
	matched := make(map[string]bool, len(keywordGroups))
	var rules []Rule
	for _, g := range keywordGroups {
		if g.suppressedBy != "" && matched[g.suppressedBy] {
			continue
		}
		if !containsAny(lower, g.keywords) {
			continue
		}
		matched[g.name] = true
		rules = append(rules, g.rules...)
	}
	return rules
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
