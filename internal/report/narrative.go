package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/ijin/internal/matching"
	"github.com/HendryAvila/ijin/internal/templates"
	"github.com/HendryAvila/ijin/internal/traits"
)

// Gap thresholds. Positioning names only large shortfalls; advice and the
// superiority text cover anything above adviceGap.
const (
	weakPointGap   = 20
	adviceGap      = 15
	maxWeakPoints  = 2
	humaneReasonAt = 70
)

type improvement struct {
	title       string
	suggestions []string
}

var improvements = map[traits.Dimension]improvement{
	traits.Execution: {"実行力を高める", []string{
		"毎日小さな目標を設定し、必ず達成する習慣をつける",
		"「完璧」を求めず、まず行動に移すことを優先する",
		"週に1つ、新しい挑戦をする",
	}},
	traits.Humanity: {"人間性を深める", []string{
		"相手の話を最後まで聴く習慣をつける",
		"週に1回は誰かの役に立つ行動をする",
		"感謝の気持ちを言葉にして伝える",
	}},
	traits.Style: {"表現力を磨く", []string{
		"自分の考えを毎日書き出す習慣をつける",
		"人前で話す機会を積極的に作る",
		"フィードバックを求め、改善する",
	}},
	traits.Charm: {"魅力を高める", []string{
		"自分の信念を明確にし、それを行動で示す",
		"ポジティブなエネルギーを発信する",
		"人の長所を見つけ、認める",
	}},
	traits.Appearance: {"外見力を向上させる", []string{
		"清潔感を常に意識する",
		"姿勢と表情を意識的に改善する",
		"自分に合ったスタイルを見つける",
	}},
}

// shortfalls returns the dimensions whose gap exceeds threshold, in
// canonical order.
func shortfalls(gaps traits.Delta, threshold int) []traits.Dimension {
	var out []traits.Dimension
	for _, d := range traits.Dimensions() {
		if gaps.Get(d) > threshold {
			out = append(out, d)
		}
	}
	return out
}

// target formats a shortfall as 実行力（52点→95点を目指す）.
func target(d traits.Dimension, user, best traits.Vector) string {
	return fmt.Sprintf("%s（%d点→%d点を目指す）", d.DisplayName(), user.Get(d), best.Get(d))
}

func matchReason(i int, m matching.Match, v traits.Vector) string {
	if i == 0 {
		return fmt.Sprintf("あなたの価値観パターン（実行力%d点、人間性%d点）は、%sである%sの生き様と最も共鳴しています。",
			v.Execution, v.Humanity, m.Profile.Description, m.Profile.Name)
	}
	trait := "行動力"
	if v.Humanity >= humaneReasonAt {
		trait = "他者への思いやり"
	}
	return fmt.Sprintf("%s。あなたの持つ%sと共通する部分があります。", m.Profile.Description, trait)
}

func superiority(name string, gaps traits.Delta) string {
	lead := fmt.Sprintf("%sは、あなたと同じ価値観を持ちながら、それを歴史に残る形で実現しました。", name)
	dims := shortfalls(gaps, adviceGap)
	if len(dims) == 0 {
		return lead + fmt.Sprintf("あなたはすでにすべての領域で%sに近い水準にあります。", name)
	}
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.DisplayName()
	}
	return lead + fmt.Sprintf("特に%sにおいて、あなたより高いレベルに達しています。", strings.Join(names, "と"))
}

func positioning(res matching.Result) string {
	best := res.Best().Profile
	top, score := res.Vector.Highest()

	var weak []string
	for _, d := range shortfalls(res.Gaps, weakPointGap) {
		weak = append(weak, target(d, res.Vector, best.Traits))
	}

	comparison := "非常にバランスの取れたプロファイルです。"
	if len(weak) > 0 {
		if len(weak) > maxWeakPoints {
			weak = weak[:maxWeakPoints]
		}
		comparison = strings.Join(weak, "と") + "に改善の余地があります。"
	}
	return fmt.Sprintf("あなたは現在、%sにおいて最も高いスコア（%d点）を持っています。%sとの比較では、%s",
		top.DisplayName(), score, best.Name, comparison)
}

func (b *Builder) advice(res matching.Result) (string, error) {
	best := res.Best().Profile
	data := templates.AdviceData{Target: best.Name}

	var summary []string
	for _, d := range shortfalls(res.Gaps, adviceGap) {
		imp := improvements[d]
		summary = append(summary, target(d, res.Vector, best.Traits))
		data.Areas = append(data.Areas, templates.AdviceArea{Title: imp.title, Suggestions: imp.suggestions})
	}
	data.Summary = strings.Join(summary, "、")

	text, err := b.renderer.Render(templates.Advice, data)
	if err != nil {
		return "", fmt.Errorf("rendering advice: %w", err)
	}
	return text, nil
}
