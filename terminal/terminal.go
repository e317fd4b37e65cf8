// Package terminal adapts tcell screens to showkit geometry: it reports
// screen bounds as core sizes and recognizes the events that should
// invalidate cached target positions.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"showkit/core"
)

// ScreenSize reports the screen's dimensions as a core.Size.
func ScreenSize(s tcell.Screen) core.Size {
	w, h := s.Size()
	return core.Size{Width: float64(w), Height: float64(h)}
}

// IsDimensionEvent reports whether ev can change layout geometry. Owners
// of cached positions call MarkDimensionsDirty when it returns true.
func IsDimensionEvent(ev tcell.Event) bool {
	_, ok := ev.(*tcell.EventResize)
	return ok
}
