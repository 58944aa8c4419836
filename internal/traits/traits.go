// Package traits defines the five-dimensional trait space shared by the
// scorer, the matcher and the reference catalog.
//
// Dimensions are always iterated in the fixed order returned by Dimensions();
// every tie-break in the system depends on that order.
package traits

import "fmt"

// --- Dimension enum ---

// Dimension names one axis of the trait space.
type Dimension string

const (
	Execution  Dimension = "execution"
	Humanity   Dimension = "humanity"
	Style      Dimension = "style"
	Charm      Dimension = "charm"
	Appearance Dimension = "appearance"
)

// Score bounds applied after normalization.
const (
	Min  = 30
	Max  = 100
	Base = 50
)

var dimensionOrder = []Dimension{Execution, Humanity, Style, Charm, Appearance}

var displayNames = map[Dimension]string{
	Execution:  "実行力",
	Humanity:   "人間性",
	Style:      "表現力",
	Charm:      "魅力",
	Appearance: "外見力",
}

// Dimensions returns all dimensions in their canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensionOrder))
	copy(out, dimensionOrder)
	return out
}

// DisplayName returns the Japanese label shown in reports.
func (d Dimension) DisplayName() string {
	if name, ok := displayNames[d]; ok {
		return name
	}
	return string(d)
}

// ParseDimension validates a dimension name.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if _, ok := displayNames[d]; !ok {
		return "", fmt.Errorf("invalid dimension %q: must be one of: execution, humanity, style, charm, appearance", s)
	}
	return d, nil
}

// --- Vector ---

// Vector is a point in the trait space.
type Vector struct {
	Execution  int `json:"execution" yaml:"execution"`
	Humanity   int `json:"humanity" yaml:"humanity"`
	Style      int `json:"style" yaml:"style"`
	Charm      int `json:"charm" yaml:"charm"`
	Appearance int `json:"appearance" yaml:"appearance"`
}

// BaseVector returns the neutral starting point (all 50).
func BaseVector() Vector {
	return Vector{Base, Base, Base, Base, Base}
}

// Get returns the value of one dimension.
func (v Vector) Get(d Dimension) int {
	switch d {
	case Execution:
		return v.Execution
	case Humanity:
		return v.Humanity
	case Style:
		return v.Style
	case Charm:
		return v.Charm
	case Appearance:
		return v.Appearance
	}
	return 0
}

// With returns a copy of v with dimension d set to value.
func (v Vector) With(d Dimension, value int) Vector {
	switch d {
	case Execution:
		v.Execution = value
	case Humanity:
		v.Humanity = value
	case Style:
		v.Style = value
	case Charm:
		v.Charm = value
	case Appearance:
		v.Appearance = value
	}
	return v
}

// Add returns v shifted by delta.
func (v Vector) Add(delta Delta) Vector {
	for _, d := range dimensionOrder {
		v = v.With(d, v.Get(d)+delta.Get(d))
	}
	return v
}

// Clamp limits every dimension to [Min, Max].
func (v Vector) Clamp() Vector {
	for _, d := range dimensionOrder {
		v = v.With(d, clamp(v.Get(d)))
	}
	return v
}

// Highest returns the dimension with the largest value. Ties go to the
// dimension that comes first in canonical order.
func (v Vector) Highest() (Dimension, int) {
	best := dimensionOrder[0]
	bestVal := v.Get(best)
	for _, d := range dimensionOrder[1:] {
		if val := v.Get(d); val > bestVal {
			best, bestVal = d, val
		}
	}
	return best, bestVal
}

func clamp(n int) int {
	if n < Min {
		return Min
	}
	if n > Max {
		return Max
	}
	return n
}

// --- Delta ---

// Delta is a signed per-dimension contribution. It shares the Vector layout
// but carries no range invariant.
type Delta Vector

// Get returns the contribution to one dimension.
func (d Delta) Get(dim Dimension) int {
	return Vector(d).Get(dim)
}

// Plus returns the sum of two deltas.
func (d Delta) Plus(other Delta) Delta {
	return Delta(Vector(d).Add(other))
}
