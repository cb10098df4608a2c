// Package bounds answers whether a point or a dragged item is inside the
// visible region of a droppable.
//
// Every function is pure: results depend only on the snapshot passed in, so
// callers may evaluate the same query any number of times per frame and from
// any goroutine.
package bounds

import (
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/geom"
)

// NoPadding is the default acceptance padding.
var NoPadding = geom.Position{}

// VisibleBounds returns the part of the droppable that is currently visible,
// in the coordinate space of pointer events, grown by padding.
//
// The droppable's measured box is moved by the container's scroll since the
// drag started and clipped to the container viewport. A droppable scrolled
// fully out of view yields an inverted box, which contains nothing.
func VisibleBounds(d dimension.Droppable, padding geom.Position) geom.Spacing {
	scrollDiff := d.Container.Scroll.Diff()
	shifted := geom.TranslateBox(d.Page.WithMargin.Spacing, scrollDiff)
	clipped := geom.Intersect(shifted, d.Container.Bounds)
	return geom.InflateBox(clipped, padding)
}
