// Package matching compares a trait vector against the reference catalog
// and derives the categorical labels shown in a report.
package matching

import (
	"sort"

	"github.com/HendryAvila/ijin/internal/catalog"
	"github.com/HendryAvila/ijin/internal/traits"
)

// TopN is the number of benchmark profiles a report shows.
const TopN = 3

// weights per dimension for the similarity distance. Humanity and charm
// count more than appearance.
var weights = map[traits.Dimension]float64{
	traits.Execution:  1.2,
	traits.Humanity:   1.5,
	traits.Style:      1.0,
	traits.Charm:      1.3,
	traits.Appearance: 0.8,
}

// Match is one reference profile scored against a user.
type Match struct {
	Profile    catalog.Profile `json:"profile"`
	Similarity float64         `json:"similarity"`
	Rank       int             `json:"rank"`
}

// Result is everything the matcher derives from one vector.
type Result struct {
	Vector    traits.Vector `json:"scores"`
	Top       []Match       `json:"top"`
	ValueType ValueType     `json:"valueType"`
	Archetype string        `json:"archetype"`
	CoreValue string        `json:"coreValue"`
	Gaps      traits.Delta  `json:"gaps"`
}

// Best returns the rank-1 match. It panics on an empty result.
func (r Result) Best() Match {
	return r.Top[0]
}

// Matcher ranks a catalog against trait vectors.
type Matcher struct {
	catalog *catalog.Catalog
}

// New creates a Matcher over c.
func New(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match ranks the catalog against v and derives every label. Gaps are
// measured against the rank-1 profile.
func (m *Matcher) Match(v traits.Vector) Result {
	res := Result{
		Vector:    v,
		Top:       Diversify(m.Rank(v), TopN),
		ValueType: DeriveValueType(v),
		Archetype: DeriveArchetype(v),
		CoreValue: DeriveCoreValue(v),
	}
	if len(res.Top) > 0 {
		res.Gaps = Gaps(res.Best().Profile.Traits, v)
	}
	return res
}

// Rank returns every profile sorted by descending similarity to v. Equal
// similarities keep catalog order.
func (m *Matcher) Rank(v traits.Vector) []Match {
	profiles := m.catalog.Profiles()
	ranked := make([]Match, len(profiles))
	for i, p := range profiles {
		ranked[i] = Match{Profile: p, Similarity: Similarity(v, p.Traits)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Similarity is 100 minus the weighted mean absolute difference between
// user and ref, as a percentage of the full 0-100 range. Identical vectors
// score exactly 100.
func Similarity(user, ref traits.Vector) float64 {
	var diff, total float64
	for _, d := range traits.Dimensions() {
		w := weights[d]
		delta := user.Get(d) - ref.Get(d)
		if delta < 0 {
			delta = -delta
		}
		diff += float64(delta) * w
		total += w * 100
	}
	return 100 - diff/total*100
}

// Diversify picks n matches from ranked, which must already be sorted.
// The first entry is always taken. Later entries are taken only when their
// category is not represented yet, until two have been chosen; after that
// the category constraint no longer applies. Ranks are renumbered 1..n.
func Diversify(ranked []Match, n int) []Match {
	out := make([]Match, 0, n)
	used := make(map[string]bool)
	for _, m := range ranked {
		if len(out) >= n {
			break
		}
		if len(out) == 0 || !used[m.Profile.Category] || len(out) >= 2 {
			m.Rank = len(out) + 1
			out = append(out, m)
			used[m.Profile.Category] = true
		}
	}
	return out
}

// Gaps is how far user falls short of target on each dimension, floored
// at zero.
func Gaps(target, user traits.Vector) traits.Delta {
	var g traits.Vector
	for _, d := range traits.Dimensions() {
		if diff := target.Get(d) - user.Get(d); diff > 0 {
			g = g.With(d, diff)
		}
	}
	return traits.Delta(g)
}
