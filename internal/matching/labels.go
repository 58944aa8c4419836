package matching

import "github.com/HendryAvila/ijin/internal/traits"

// predicate tests a trait vector against fixed thresholds.
type predicate func(v traits.Vector) bool

// ValueType is the user's dominant value category.
type ValueType struct {
	Main        string `json:"main"`
	Sub         string `json:"sub"`
	Description string `json:"description"`
}

// valueTypeRule maps a predicate to a value type. Rules are evaluated in
// order and the first match wins.
type valueTypeRule struct {
	When   predicate
	Result ValueType
}

// labelRule maps a predicate to a fixed phrase.
type labelRule struct {
	When predicate
	Text string
}

// valueTypeRules is the ordered value-type table.
var valueTypeRules = []valueTypeRule{
	{
		When:   func(v traits.Vector) bool { return v.Execution >= 75 && v.Style >= 65 },
		Result: ValueType{"【革新と変革】", "変革を恐れない挑戦者", "既存の枠組みを超え、新しい価値を創造することに情熱を持つタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Execution >= 70 && v.Humanity <= 60 },
		Result: ValueType{"【論理と効率】", "冷静な分析者", "データと分析に基づき、最適解を追求するタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Humanity >= 80 && v.Charm >= 70 },
		Result: ValueType{"【共感とリーダーシップ】", "人々を導く指導者", "人々の心を動かし、大義のために人々を導くタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Style >= 75 },
		Result: ValueType{"【芸術と表現】", "創造的な表現者", "美と創造性を通じて人々の心に訴えるタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Execution >= 80 && v.Charm >= 75 },
		Result: ValueType{"【戦略と勝利】", "勝利を追求する戦略家", "競争環境で最適な判断を下し、勝利を収めるタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Humanity >= 75 && v.Execution <= 65 },
		Result: ValueType{"【哲学と思索】", "深い洞察を持つ思索者", "物事の本質を追求し、深い洞察を持つタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Humanity >= 85 },
		Result: ValueType{"【誠実と献身】", "使命に生きる献身者", "真摯に使命に向き合い、献身的に働くタイプ"},
	},
	{
		When:   func(v traits.Vector) bool { return v.Humanity >= 70 && v.Charm >= 65 && v.Execution <= 70 },
		Result: ValueType{"【調和と共存】", "調和を重んじる調停者", "対立を超えて共存の道を探るタイプ"},
	},
}

var (
	balancedLeader   = ValueType{"【共感とリーダーシップ】", "バランスの取れたリーダー", "人々との関係を大切にしながら、着実に前進するタイプ"}
	practicalActor   = ValueType{"【論理と効率】", "実践的な行動者", "論理的に考え、効率的に行動するタイプ"}
	growthArchetype  = "可能性を秘めた成長途上のリーダー"
	balancedCoreGoal = "バランスの取れた総合的な成長"
)

// archetypeRules is the ordered archetype table.
var archetypeRules = []labelRule{
	{func(v traits.Vector) bool { return v.Execution >= 85 && v.Charm >= 85 }, "カリスマ的な変革者"},
	{func(v traits.Vector) bool { return v.Humanity >= 90 && v.Charm >= 80 }, "人々を癒やし導く光"},
	{func(v traits.Vector) bool { return v.Execution >= 80 && v.Humanity >= 80 }, "信念と共感を兼ね備えた指導者"},
	{func(v traits.Vector) bool { return v.Style >= 85 }, "独自の世界観を持つ表現者"},
	{func(v traits.Vector) bool { return v.Humanity >= 85 }, "静かな強さで人を導くビジョナリー"},
	{func(v traits.Vector) bool { return v.Execution >= 80 }, "不屈の意志を持つ実行者"},
	{func(v traits.Vector) bool { return v.Charm >= 80 }, "人を惹きつける魅力を持つ存在"},
	{func(v traits.Vector) bool { return v.Appearance >= 75 }, "内外ともに磨かれた存在感の持ち主"},
}

// coreValueRules is the ordered core-value table.
var coreValueRules = []labelRule{
	{func(v traits.Vector) bool { return v.Humanity >= 85 }, "他者への思いやりと誠実さ"},
	{func(v traits.Vector) bool { return v.Execution >= 85 }, "目標達成への強い意志"},
	{func(v traits.Vector) bool { return v.Charm >= 85 }, "人を惹きつける信念の力"},
	{func(v traits.Vector) bool { return v.Style >= 85 }, "自己表現と創造性"},
	{func(v traits.Vector) bool { return v.Humanity >= 75 && v.Execution >= 75 }, "信念を持ち、行動で示す誠実さ"},
	{func(v traits.Vector) bool { return v.Execution >= 75 }, "効率的に結果を出す実行力"},
	{func(v traits.Vector) bool { return v.Humanity >= 75 }, "人との調和と協力"},
}

// DeriveValueType returns the first matching value type. Without a match,
// profiles leaning on humanity get the balanced-leader type and the rest
// the practical-actor type.
func DeriveValueType(v traits.Vector) ValueType {
	for _, r := range valueTypeRules {
		if r.When(v) {
			return r.Result
		}
	}
	if v.Humanity >= v.Execution {
		return balancedLeader
	}
	return practicalActor
}

// DeriveArchetype returns the first matching archetype phrase.
func DeriveArchetype(v traits.Vector) string {
	return firstMatch(archetypeRules, v, growthArchetype)
}

// DeriveCoreValue returns the first matching core-value phrase.
func DeriveCoreValue(v traits.Vector) string {
	return firstMatch(coreValueRules, v, balancedCoreGoal)
}

func firstMatch(rules []labelRule, v traits.Vector, fallback string) string {
	for _, r := range rules {
		if r.When(v) {
			return r.Text
		}
	}
	return fallback
}
