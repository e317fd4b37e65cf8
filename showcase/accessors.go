package showcase

import "showkit/core"

// Convenience accessors over the cached rectangles. The edge and span
// accessors read the padded, clamped highlight rectangle; the point
// accessors read the exact overlay-space rectangle.

// Top returns the highlight rectangle's top edge.
func (tp *TargetPosition) Top() float64 {
	return tp.HighlightRect().Top
}

// Bottom returns the highlight rectangle's bottom edge.
func (tp *TargetPosition) Bottom() float64 {
	return tp.HighlightRect().Bottom
}

// Left returns the highlight rectangle's left edge.
func (tp *TargetPosition) Left() float64 {
	return tp.HighlightRect().Left
}

// Right returns the highlight rectangle's right edge.
func (tp *TargetPosition) Right() float64 {
	return tp.HighlightRect().Right
}

// Width returns the highlight rectangle's width.
func (tp *TargetPosition) Width() float64 {
	return tp.HighlightRect().Width()
}

// Height returns the highlight rectangle's height.
func (tp *TargetPosition) Height() float64 {
	return tp.HighlightRect().Height()
}

// HorizontalCenter returns the midpoint between the highlight rectangle's
// left and right edges.
func (tp *TargetPosition) HorizontalCenter() float64 {
	r := tp.HighlightRect()
	return (r.Left + r.Right) / 2
}

// TopLeftInOverlaySpace returns the top-left corner of the exact target
// bounds in reference space.
func (tp *TargetPosition) TopLeftInOverlaySpace() core.Point {
	return tp.RectInOverlaySpace().TopLeft()
}

// CenterInOverlaySpace returns the center of the exact target bounds in
// reference space.
func (tp *TargetPosition) CenterInOverlaySpace() core.Point {
	return tp.RectInOverlaySpace().Center()
}
