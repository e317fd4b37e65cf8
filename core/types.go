// Package core contains the fundamental geometry types used throughout showkit.
package core

import "showkit/geometry"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the point translated by -d.
func (p Point) Sub(d Point) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

// Size represents the dimensions of a region or screen.
type Size struct {
	Width, Height float64
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Padding is the amount to expand a rectangle outward on each side.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// PaddingAll returns padding with the same amount on every side.
func PaddingAll(v float64) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Rect is an axis-aligned rectangle given by its four edges.
// The zero Rect doubles as the "nothing to highlight" sentinel.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAt builds a rectangle from an origin point and a size.
func RectAt(origin Point, size Size) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + size.Width,
		Bottom: origin.Y + size.Height,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) / 2,
		Y: (r.Top + r.Bottom) / 2,
	}
}

// IsZero returns true if all four edges are zero.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{
		Left:   r.Left + d.X,
		Top:    r.Top + d.Y,
		Right:  r.Right + d.X,
		Bottom: r.Bottom + d.Y,
	}
}

// Inflate returns the rectangle expanded outward by p on each side.
func (r Rect) Inflate(p Padding) Rect {
	return Rect{
		Left:   r.Left - p.Left,
		Top:    r.Top - p.Top,
		Right:  r.Right + p.Right,
		Bottom: r.Bottom + p.Bottom,
	}
}

// ClampTo limits each edge independently to the area [0, bounds.Width] x
// [0, bounds.Height]. Edges are not clamped against each other, so a
// rectangle pushed entirely past a bound can come back degenerate or
// inverted; callers that care must check Width/Height themselves.
func (r Rect) ClampTo(bounds Size) Rect {
	return Rect{
		Left:   geometry.Clamp(r.Left, 0, bounds.Width),
		Top:    geometry.Clamp(r.Top, 0, bounds.Height),
		Right:  geometry.Clamp(r.Right, 0, bounds.Width),
		Bottom: geometry.Clamp(r.Bottom, 0, bounds.Height),
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right &&
		p.Y >= r.Top && p.Y < r.Bottom
}
