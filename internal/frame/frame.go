// Package frame holds the measurements for the frame currently being dragged over.
package frame

import (
	"errors"
	"sort"
	"sync"

	"github.com/frudas24/dropzone/internal/bounds"
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/geom"
)

// ErrUnknownDroppable is returned when a query names a droppable not in the frame.
var ErrUnknownDroppable = errors.New("unknown droppable")

// ErrNoDraggable is returned when a draggable check has nothing to test.
var ErrNoDraggable = errors.New("no draggable in frame")

// Frame holds the latest measured snapshot. Queries run against a copy, so a
// concurrent Set never changes the answer of a query in flight.
type Frame struct {
	mu        sync.RWMutex
	snapshot  dimension.Snapshot
	tolerance float64
}

// New returns an empty frame that tests draggables with the given tolerance.
func New(tolerance float64) *Frame {
	return &Frame{tolerance: tolerance}
}

// Set replaces the current snapshot and returns a copy of what was stored.
func (f *Frame) Set(s dimension.Snapshot) dimension.Snapshot {
	s = s.Normalize()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = s
	return s.Clone()
}

// Snapshot returns a copy of the current snapshot.
func (f *Frame) Snapshot() dimension.Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot.Clone()
}

// Tolerance returns the edge tolerance used for draggable checks.
func (f *Frame) Tolerance() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tolerance
}

// UpdateScroll records a new current scroll offset for a droppable's container.
func (f *Frame) UpdateScroll(id string, current geom.Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.snapshot.Droppables {
		if f.snapshot.Droppables[i].ID == id {
			d := &f.snapshot.Droppables[i]
			d.Container = d.Container.WithScroll(current)
			return nil
		}
	}
	return ErrUnknownDroppable
}

// VisibleBounds returns the visible bounds of a droppable in the current frame.
func (f *Frame) VisibleBounds(id string, padding geom.Position) (geom.Spacing, error) {
	d, ok := f.droppable(id)
	if !ok {
		return geom.Spacing{}, ErrUnknownDroppable
	}
	return bounds.VisibleBounds(d, padding), nil
}

// PointIn reports whether point is over the visible part of a droppable.
func (f *Frame) PointIn(id string, point, padding geom.Position) (bool, error) {
	d, ok := f.droppable(id)
	if !ok {
		return false, ErrUnknownDroppable
	}
	return bounds.PointInDroppable(d, padding).Contains(point), nil
}

// DroppableOver returns the droppable the point is over. Droppables are
// checked in id order so overlapping regions resolve the same way every time.
func (f *Frame) DroppableOver(point, padding geom.Position) (string, bool) {
	snap := f.Snapshot()
	sort.Slice(snap.Droppables, func(i, j int) bool {
		return snap.Droppables[i].ID < snap.Droppables[j].ID
	})
	for _, d := range snap.Droppables {
		if bounds.PointInDroppable(d, padding).Contains(point) {
			return d.ID, true
		}
	}
	return "", false
}

// DraggableWithin reports whether the draggable sits fully inside the visible
// part of a droppable. A nil draggable falls back to the one in the snapshot.
func (f *Frame) DraggableWithin(id string, draggable *dimension.Draggable, padding geom.Position) (bool, error) {
	snap := f.Snapshot()
	d, ok := snap.Droppable(id)
	if !ok {
		return false, ErrUnknownDroppable
	}
	if draggable == nil {
		draggable = snap.Draggable
	}
	if draggable == nil {
		return false, ErrNoDraggable
	}
	visible := bounds.VisibleBounds(d, padding)
	return bounds.BoxWithinBoundsTolerance(visible, f.Tolerance()).Contains(*draggable), nil
}

// droppable returns a copy of the droppable with the given id.
func (f *Frame) droppable(id string) (dimension.Droppable, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot.Droppable(id)
}
