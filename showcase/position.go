// Package showcase computes where a tutorial overlay should highlight its
// current target: the target's bounding box translated into the overlay's
// coordinate space, expanded by padding, and clamped to the screen.
package showcase

import (
	"errors"

	"showkit/core"
	"showkit/layout"
)

// ErrNilReference is returned by NewTargetPosition when no reference
// element is supplied; every coordinate transform needs a reference frame.
var ErrNilReference = errors.New("showcase: reference element is nil")

// TargetPosition translates one target element's bounding box into the
// coordinate space of a reference (overlay) element and memoizes the
// derived rectangles until the owner signals a dimension change.
//
// A TargetPosition is owned and called from a single goroutine, the one
// driving the UI. It performs no locking and never invalidates itself:
// the owner calls MarkDimensionsDirty after any layout-affecting event.
// One instance lives for one showcase step and is replaced when the
// showcase advances.
type TargetPosition struct {
	target    layout.Element // may be nil: nothing to highlight yet
	reference layout.Element
	root      layout.Element // reserved; not consulted by any computation
	screen    core.Size
	padding   core.Padding

	cachedHighlight *core.Rect
	cachedOverlay   *core.Rect
	dimensionsDirty bool
}

// Option configures a TargetPosition at construction time.
type Option func(*TargetPosition)

// WithPadding sets how far the highlight expands beyond the target on each
// side. The default is zero padding.
func WithPadding(p core.Padding) Option {
	return func(tp *TargetPosition) { tp.padding = p }
}

// WithRoot records an alternate ancestor reference. The value is carried
// but does not affect any computation.
func WithRoot(root layout.Element) Option {
	return func(tp *TargetPosition) { tp.root = root }
}

// NewTargetPosition creates the calculator for one showcase step. The
// target may be nil, meaning nothing is mounted yet; every accessor then
// returns zero values. The reference element is required. By caller
// convention screen matches the reference element's own size; this is not
// enforced. The calculator starts dirty, so the first read computes.
func NewTargetPosition(target, reference layout.Element, screen core.Size, opts ...Option) (*TargetPosition, error) {
	if reference == nil {
		return nil, ErrNilReference
	}
	tp := &TargetPosition{
		target:          target,
		reference:       reference,
		screen:          screen,
		dimensionsDirty: true,
	}
	for _, opt := range opts {
		opt(tp)
	}
	return tp, nil
}

// MarkDimensionsDirty forces the next read of either cached accessor to
// recompute. Call it after anything that can move or resize the target,
// the reference frame, or the screen: a layout pass, a terminal resize, a
// scroll. Skipping it yields stale geometry; that is the accepted cost of
// not re-running the transform on every frame.
func (tp *TargetPosition) MarkDimensionsDirty() {
	tp.dimensionsDirty = true
}

// Dirty reports whether the next cached read will recompute.
func (tp *TargetPosition) Dirty() bool {
	return tp.dimensionsDirty
}

// OverlayRect computes the target's bounding box in the reference
// element's coordinate space: no padding, no clamping, no caching. It
// returns the zero rect when no target is set, or when the target turns
// out not to be inside the reference frame; neither case is an error,
// there is simply nothing to highlight.
func (tp *TargetPosition) OverlayRect() core.Rect {
	if tp.target == nil {
		return core.Rect{}
	}
	origin, err := tp.target.OriginIn(tp.reference)
	if err != nil {
		return core.Rect{}
	}
	return core.RectAt(origin, tp.target.Size())
}

// HighlightRect returns the padded rectangle used to cut the highlight
// hole around the target, with every edge clamped independently into the
// screen bounds. The result is cached until MarkDimensionsDirty is called.
func (tp *TargetPosition) HighlightRect() core.Rect {
	if tp.target == nil {
		return core.Rect{}
	}
	if tp.cachedHighlight != nil && !tp.dimensionsDirty {
		return *tp.cachedHighlight
	}
	r := tp.OverlayRect().Inflate(tp.padding).ClampTo(tp.screen)
	tp.dimensionsDirty = false
	tp.cachedHighlight = &r
	return r
}

// RectInOverlaySpace returns the exact target bounds in reference space,
// unpadded and unclamped, for callers that anchor precisely at a target
// edge (a pointer arrow, say) rather than at the padded highlight.
//
// It caches separately from HighlightRect but shares the one dirty flag:
// whichever accessor runs first after an invalidation clears the flag for
// both. Keep that in mind when interleaving reads across dirty cycles.
func (tp *TargetPosition) RectInOverlaySpace() core.Rect {
	if tp.target == nil {
		return core.Rect{}
	}
	if tp.cachedOverlay != nil && !tp.dimensionsDirty {
		return *tp.cachedOverlay
	}
	r := tp.OverlayRect()
	tp.dimensionsDirty = false
	tp.cachedOverlay = &r
	return r
}
