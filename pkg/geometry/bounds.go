package geometry

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrEmptyInput reports that a computation needing at least one value
// received none.
var ErrEmptyInput = errors.New("empty input")

// Bounds is an inclusive min/max range over any totally-ordered value type.
// The zero value is a degenerate range at the type's zero value. A Bounds is
// immutable; every operation returns a new value.
type Bounds[T cmp.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// NewBounds creates a Bounds from two values, swapping them if given out of
// order so that Min <= Max always holds.
func NewBounds[T cmp.Ordered](a, b T) Bounds[T] {
	if b < a {
		a, b = b, a
	}
	return Bounds[T]{Min: a, Max: b}
}

// BoundsFromSlice scans values for their minimum and maximum.
// Returns ErrEmptyInput when values is empty.
func BoundsFromSlice[T cmp.Ordered](values []T) (Bounds[T], error) {
	if len(values) == 0 {
		return Bounds[T]{}, fmt.Errorf("bounds from slice: %w", ErrEmptyInput)
	}
	b := Bounds[T]{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b, nil
}

// Contains returns true if v lies within the bounds, boundary inclusive.
func (b Bounds[T]) Contains(v T) bool {
	return v >= b.Min && v <= b.Max
}

// ContainsExclusive returns true if v lies strictly inside the bounds.
func (b Bounds[T]) ContainsExclusive(v T) bool {
	return v > b.Min && v < b.Max
}

// ContainsBounds returns true if other lies entirely within b, boundary
// inclusive.
func (b Bounds[T]) ContainsBounds(other Bounds[T]) bool {
	return other.Min >= b.Min && other.Max <= b.Max
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds[T]) Union(other Bounds[T]) Bounds[T] {
	out := b
	if other.Min < out.Min {
		out.Min = other.Min
	}
	if other.Max > out.Max {
		out.Max = other.Max
	}
	return out
}

// Intersect returns the overlap of b and other and true, or the zero Bounds
// and false when they do not overlap.
func (b Bounds[T]) Intersect(other Bounds[T]) (Bounds[T], bool) {
	out := b
	if other.Min > out.Min {
		out.Min = other.Min
	}
	if other.Max < out.Max {
		out.Max = other.Max
	}
	if out.Max < out.Min {
		return Bounds[T]{}, false
	}
	return out, true
}

// IsDegenerate returns true when Min == Max. Degenerate bounds are valid
// (single-point datasets produce them) and downstream consumers must handle
// them without dividing by zero.
func (b Bounds[T]) IsDegenerate() bool {
	return b.Min == b.Max
}
