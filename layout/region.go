package layout

import (
	"errors"

	"showkit/core"
)

// ErrNotAncestor is returned by OriginIn when the requested ancestor is not
// on the element's parent chain.
var ErrNotAncestor = errors.New("layout: element is not an ancestor")

// Region is a rectangular area positioned relative to its parent. A Region
// never tracks its own staleness: after Move or Resize the caller is
// responsible for invalidating anything computed from it.
type Region struct {
	parent *Region
	offset core.Point // position of the region's origin in parent space
	size   core.Size
}

// NewRoot creates a parentless region, typically sized to the screen.
func NewRoot(size core.Size) *Region {
	return &Region{size: size}
}

// NewChild creates a region positioned at offset within r.
func (r *Region) NewChild(offset core.Point, size core.Size) *Region {
	return &Region{parent: r, offset: offset, size: size}
}

// Size returns the region's dimensions.
func (r *Region) Size() core.Size {
	return r.size
}

// Offset returns the region's position in its parent's coordinate space.
func (r *Region) Offset() core.Point {
	return r.offset
}

// Parent returns the enclosing region, or nil for a root.
func (r *Region) Parent() *Region {
	return r.parent
}

// Move repositions the region within its parent.
func (r *Region) Move(offset core.Point) {
	r.offset = offset
}

// Resize changes the region's dimensions.
func (r *Region) Resize(size core.Size) {
	r.size = size
}

// OriginIn walks up the parent chain accumulating offsets until it reaches
// ancestor. A region counts as its own ancestor, with a zero origin.
func (r *Region) OriginIn(ancestor Element) (core.Point, error) {
	var origin core.Point
	for cur := r; cur != nil; cur = cur.parent {
		if Element(cur) == ancestor {
			return origin, nil
		}
		origin = origin.Add(cur.offset)
	}
	return core.Point{}, ErrNotAncestor
}

// Bounds returns the region's rectangle in ancestor's coordinate space.
func (r *Region) Bounds(ancestor Element) (core.Rect, error) {
	origin, err := r.OriginIn(ancestor)
	if err != nil {
		return core.Rect{}, err
	}
	return core.RectAt(origin, r.size), nil
}
