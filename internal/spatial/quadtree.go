// Package spatial provides a quad-tree index over 2D point positions, used
// for rectangle selection and tap hit-testing on projected chart points.
package spatial

import (
	"errors"

	"chart-grid/pkg/geometry"
)

// ErrUnimplemented marks features that exist in the API surface but are
// deliberately not built. Callers must not rely on them.
var ErrUnimplemented = errors.New("not implemented")

// Element pairs an opaque payload (typically a data row id) with the point it
// is indexed at. The tree never mutates the payload.
type Element[T any] struct {
	Item   T
	Center geometry.Point2D
}

// QuadTree is a four-way recursive spatial partition of a rectangular region.
// It is built fresh whenever the point set or viewport changes; there is no
// delete or rebalance. Queries are read-only.
type QuadTree[T any] struct {
	capacity int
	maxDepth int
	root     *node[T]
	count    int
}

// A node is either a leaf holding contents, or an internal node with exactly
// four children. The two are never populated at the same time.
type node[T any] struct {
	region   geometry.Rect
	depth    int
	contents []Element[T]
	children *[4]*node[T]
}

const (
	// DefaultCapacity is the leaf size before a split.
	DefaultCapacity = 8
	// DefaultMaxDepth caps recursion on degenerate clustered data.
	DefaultMaxDepth = 10
)

// New creates a quad-tree over the given pixel region. Non-positive capacity
// or maxDepth select the defaults.
func New[T any](region geometry.Rect, capacity, maxDepth int) *QuadTree[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &QuadTree[T]{
		capacity: capacity,
		maxDepth: maxDepth,
		root:     &node[T]{region: region},
	}
}

// Region returns the rectangle the tree indexes.
func (t *QuadTree[T]) Region() geometry.Rect { return t.root.region }

// Len returns the number of indexed elements.
func (t *QuadTree[T]) Len() int { return t.count }

// Insert indexes item at point. It returns false, without error, when point
// lies outside the tree's region; callers may legitimately probe with
// out-of-view points and skip them.
func (t *QuadTree[T]) Insert(item T, point geometry.Point2D) bool {
	if !t.root.region.Contains(point) {
		return false
	}
	t.root.insert(Element[T]{Item: item, Center: point}, t.capacity, t.maxDepth)
	t.count++
	return true
}

func (n *node[T]) insert(el Element[T], capacity, maxDepth int) {
	if n.children != nil {
		n.childFor(el.Center).insert(el, capacity, maxDepth)
		return
	}

	// Split before accepting an element that would push a leaf past
	// capacity, unless the depth cap says to keep growing in place.
	if len(n.contents) >= capacity && n.depth < maxDepth {
		n.split()
		for _, existing := range n.contents {
			n.childFor(existing.Center).insert(existing, capacity, maxDepth)
		}
		n.contents = nil
		n.childFor(el.Center).insert(el, capacity, maxDepth)
		return
	}

	n.contents = append(n.contents, el)
}

// split divides the node's region into four equal quadrants.
func (n *node[T]) split() {
	r := n.region
	hw := r.Width / 2
	hh := r.Height / 2
	n.children = &[4]*node[T]{
		{region: geometry.NewRect(r.X, r.Y, hw, hh), depth: n.depth + 1},
		{region: geometry.NewRect(r.X+hw, r.Y, hw, hh), depth: n.depth + 1},
		{region: geometry.NewRect(r.X, r.Y+hh, hw, hh), depth: n.depth + 1},
		{region: geometry.NewRect(r.X+hw, r.Y+hh, hw, hh), depth: n.depth + 1},
	}
}

// childFor picks the quadrant for a point. Points exactly on a split line go
// to the low (left/top) quadrant for both dimensions.
func (n *node[T]) childFor(p geometry.Point2D) *node[T] {
	mid := n.region.Center()
	idx := 0
	if p.X > mid.X {
		idx |= 1
	}
	if p.Y > mid.Y {
		idx |= 2
	}
	return n.children[idx]
}

// QueryRect returns every element whose point lies within rect, boundary
// inclusive. Subtrees whose region does not overlap rect are pruned.
func (t *QuadTree[T]) QueryRect(rect geometry.Rect) []Element[T] {
	var out []Element[T]
	t.root.queryRect(rect, &out)
	return out
}

func (n *node[T]) queryRect(rect geometry.Rect, out *[]Element[T]) {
	if !n.region.Intersects(rect) {
		return
	}
	if n.children != nil {
		for _, c := range n.children {
			c.queryRect(rect, out)
		}
		return
	}
	for _, el := range n.contents {
		if rect.Contains(el.Center) {
			*out = append(*out, el)
		}
	}
}

// QueryNearest returns the element closest to point among those within
// searchRadius, implemented as a bounded rectangular query followed by a
// linear minimum-distance scan. It reports false when nothing lies inside
// the radius. This is deliberately not an unbounded nearest-neighbor search.
func (t *QuadTree[T]) QueryNearest(point geometry.Point2D, searchRadius float64) (Element[T], bool) {
	window := geometry.NewRect(
		point.X-searchRadius, point.Y-searchRadius,
		2*searchRadius, 2*searchRadius,
	)
	candidates := t.QueryRect(window)

	var best Element[T]
	radiusSq := searchRadius * searchRadius
	bestDistSq := radiusSq
	found := false
	for _, el := range candidates {
		d := el.Center.DistanceSq(point)
		if d > radiusSq {
			// Window corners reach beyond the radius; drop them.
			continue
		}
		if !found || d < bestDistSq {
			best = el
			bestDistSq = d
			found = true
		}
	}
	return best, found
}

// QueryNearestUnbounded would find the globally nearest element using
// edge-distance pruning. It is not part of the supported surface; use
// QueryNearest with an explicit radius.
func (t *QuadTree[T]) QueryNearestUnbounded(point geometry.Point2D) (Element[T], error) {
	return Element[T]{}, ErrUnimplemented
}
