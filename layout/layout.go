// Package layout models the host layout tree that showcase targets live in.
package layout

import "showkit/core"

// Element is a positioned region in a layout tree. It supplies the two
// geometry primitives the showcase calculator consumes: the element's own
// size, and the position of its local origin in an ancestor's coordinate
// space.
type Element interface {
	// Size returns the element's dimensions in its own coordinate space.
	Size() core.Size

	// OriginIn reports the position of the element's local origin (0,0)
	// expressed in ancestor's coordinate space. It fails when ancestor is
	// not actually an ancestor of the element.
	OriginIn(ancestor Element) (core.Point, error)
}
