// Package scale provides value-to-normalized mappings and tick generation for
// chart axes.
package scale

import (
	"errors"
	"fmt"
	"math"

	"chart-grid/pkg/geometry"
)

// ErrDomain reports that a mapping was asked to cover values outside its
// mathematical domain, e.g. a logarithmic mapping over non-positive bounds.
var ErrDomain = errors.New("value outside mapping domain")

// degenerateNorm is the normalized position reported for any value when the
// bounds have zero width. Single-point datasets hit this constantly during
// interactive use, so it is a defined fallback rather than an error.
const degenerateNorm = 0.5

// Kind identifies a mapping variant. The set is closed: every switch over
// Kind in this package and its callers handles all variants explicitly.
type Kind int

const (
	Linear Kind = iota
	Logarithmic
)

// String returns the mapping kind name.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mapping is a stateless transform pair between a data value and a normalized
// position in [0,1], parameterized by a bounds. Mappings are value types and
// never mutated.
type Mapping struct {
	Kind   Kind
	Bounds geometry.Bounds[float64]

	// Base is the logarithm base used for tick placement. Zero means 10.
	// The Forward/Inverse math is base-independent.
	Base float64
}

// NewLinear creates a linear mapping over the given bounds.
func NewLinear(b geometry.Bounds[float64]) Mapping {
	return Mapping{Kind: Linear, Bounds: b}
}

// NewLog creates a base-10 logarithmic mapping over the given bounds.
// The bounds must be strictly positive.
func NewLog(b geometry.Bounds[float64]) (Mapping, error) {
	if b.Min <= 0 {
		return Mapping{}, fmt.Errorf("log mapping requires positive bounds, got min=%g: %w", b.Min, ErrDomain)
	}
	return Mapping{Kind: Logarithmic, Bounds: b, Base: 10}, nil
}

// WithBounds returns a copy of the mapping over different bounds.
// For a logarithmic mapping the new bounds must be strictly positive.
func (m Mapping) WithBounds(b geometry.Bounds[float64]) (Mapping, error) {
	if m.Kind == Logarithmic && b.Min <= 0 {
		return Mapping{}, fmt.Errorf("log mapping requires positive bounds, got min=%g: %w", b.Min, ErrDomain)
	}
	m.Bounds = b
	return m, nil
}

// base returns the tick base, defaulting to 10.
func (m Mapping) base() float64 {
	if m.Base == 0 {
		return 10
	}
	return m.Base
}

// Forward maps a data value to its normalized position in [0,1].
// Values outside the bounds extrapolate beyond [0,1]. Degenerate bounds map
// every value to 0.5.
func (m Mapping) Forward(v float64) float64 {
	b := m.Bounds
	if b.IsDegenerate() {
		return degenerateNorm
	}
	switch m.Kind {
	case Linear:
		return (v - b.Min) / (b.Max - b.Min)
	case Logarithmic:
		return (math.Log(v) - math.Log(b.Min)) / (math.Log(b.Max) - math.Log(b.Min))
	default:
		panic(fmt.Sprintf("unhandled mapping kind %v", m.Kind))
	}
}

// Inverse maps a normalized position back to its data value. It is the exact
// algebraic inverse of Forward. Degenerate bounds invert every position to
// the single bound value.
func (m Mapping) Inverse(t float64) float64 {
	b := m.Bounds
	if b.IsDegenerate() {
		return b.Min
	}
	switch m.Kind {
	case Linear:
		return b.Min + t*(b.Max-b.Min)
	case Logarithmic:
		return math.Exp(math.Log(b.Min) + t*(math.Log(b.Max)-math.Log(b.Min)))
	default:
		panic(fmt.Sprintf("unhandled mapping kind %v", m.Kind))
	}
}
