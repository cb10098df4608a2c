// Package testutil provides measurement fixtures and fakes for tests.
package testutil

import (
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/geom"
)

// Viewport is the 100x100 scroll container used by TwoLists.
var Viewport = geom.Spacing{Top: 0, Right: 100, Bottom: 100, Left: 0}

// TwoLists returns two side by side lists. "alpha" is 100x200 inside the
// scrolling Viewport, "beta" sits at x=200..300 with no scroll parent. The
// draggable fills the top half of alpha.
func TwoLists() dimension.Snapshot {
	container := dimension.Container{Bounds: Viewport}
	drag := Draggable(geom.Spacing{Top: 0, Right: 100, Bottom: 50, Left: 0})
	return dimension.Snapshot{
		Droppables: []dimension.Droppable{
			dimension.NewDroppable("alpha", geom.Spacing{Top: 0, Right: 100, Bottom: 200, Left: 0}, geom.Spacing{}, &container),
			dimension.NewDroppable("beta", geom.Spacing{Top: 0, Right: 300, Bottom: 200, Left: 200}, geom.Spacing{}, nil),
		},
		Draggable: &drag,
	}
}

// Draggable returns a draggable in alpha whose margin box is s.
func Draggable(s geom.Spacing) dimension.Draggable {
	return dimension.NewDraggable("item-1", "alpha", s, geom.Spacing{})
}
