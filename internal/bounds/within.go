package bounds

import (
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/geom"
)

// BoundaryTolerance widens each edge when testing a dragged box. Margin
// arithmetic upstream drifts by about 0.001, so a box that sits flush with the
// droppable edge must not be rejected.
const BoundaryTolerance = 1.0

// PointPredicate tests points against a fixed box.
type PointPredicate struct {
	horizontal geom.Range
	vertical   geom.Range
}

// PointWithin builds a point predicate for an already computed box.
func PointWithin(box geom.Spacing) PointPredicate {
	return PointPredicate{
		horizontal: geom.WithinRange(box.Left, box.Right),
		vertical:   geom.WithinRange(box.Top, box.Bottom),
	}
}

// PointInDroppable computes the droppable's visible bounds once and returns a
// predicate that can be reused for every pointer position in the frame.
func PointInDroppable(d dimension.Droppable, padding geom.Position) PointPredicate {
	return PointWithin(VisibleBounds(d, padding))
}

// Contains reports whether p is inside the box, edges inclusive.
func (p PointPredicate) Contains(pt geom.Position) bool {
	return p.horizontal.Contains(pt.X) && p.vertical.Contains(pt.Y)
}

// DraggablePredicate tests whether a dragged item is fully inside a box.
type DraggablePredicate struct {
	horizontal geom.Range
	vertical   geom.Range
	empty      bool
}

// BoxWithinBounds returns a predicate requiring all four edges of a
// draggable's margin box to lie inside box, widened by BoundaryTolerance.
// Partial overlap is not enough.
func BoxWithinBounds(box geom.Spacing) DraggablePredicate {
	return BoxWithinBoundsTolerance(box, BoundaryTolerance)
}

// BoxWithinBoundsTolerance is BoxWithinBounds with an explicit tolerance.
// An inverted box stays empty no matter how wide the tolerance is.
func BoxWithinBoundsTolerance(box geom.Spacing, tolerance float64) DraggablePredicate {
	return DraggablePredicate{
		horizontal: geom.WithinRange(box.Left-tolerance, box.Right+tolerance),
		vertical:   geom.WithinRange(box.Top-tolerance, box.Bottom+tolerance),
		empty:      box.Inverted(),
	}
}

// Contains reports whether every edge of the draggable's margin box is in range.
func (p DraggablePredicate) Contains(d dimension.Draggable) bool {
	if p.empty {
		return false
	}
	f := d.Page.WithMargin
	return p.horizontal.Contains(f.Left) &&
		p.horizontal.Contains(f.Right) &&
		p.vertical.Contains(f.Top) &&
		p.vertical.Contains(f.Bottom)
}
