// Package dimension describes the measured boxes of droppables and draggables.
package dimension

import "github.com/frudas24/dropzone/internal/geom"

// Fragment is a box plus its derived size and center.
type Fragment struct {
	geom.Spacing `yaml:",inline"`
	Width        float64       `json:"width" yaml:"width"`
	Height       float64       `json:"height" yaml:"height"`
	Center       geom.Position `json:"center" yaml:"center"`
}

// NewFragment derives size and center from the box edges.
func NewFragment(s geom.Spacing) Fragment {
	return Fragment{
		Spacing: s,
		Width:   s.Width(),
		Height:  s.Height(),
		Center:  s.Center(),
	}
}

// Page holds an element's page-relative extent with and without its margin.
type Page struct {
	WithoutMargin Fragment `json:"withoutMargin" yaml:"withoutMargin"`
	WithMargin    Fragment `json:"withMargin" yaml:"withMargin"`
}

// NewPage builds a Page from the border box and the element's margin.
func NewPage(box geom.Spacing, margin geom.Spacing) Page {
	return Page{
		WithoutMargin: NewFragment(box),
		WithMargin: NewFragment(geom.Spacing{
			Top:    box.Top - margin.Top,
			Right:  box.Right + margin.Right,
			Bottom: box.Bottom + margin.Bottom,
			Left:   box.Left - margin.Left,
		}),
	}
}

// ScrollState records a scroll container's offset at drag start and now.
type ScrollState struct {
	Initial geom.Position `json:"initial" yaml:"initial"`
	Current geom.Position `json:"current" yaml:"current"`
}

// Diff returns how far content has to move back to match the drag start.
func (s ScrollState) Diff() geom.Position {
	return geom.Subtract(s.Initial, s.Current)
}

// Container is the nearest scrollable ancestor of a droppable.
type Container struct {
	Scroll ScrollState  `json:"scroll" yaml:"scroll"`
	Bounds geom.Spacing `json:"bounds" yaml:"bounds"`
}

// WithScroll returns a copy of c with the current scroll replaced.
func (c Container) WithScroll(current geom.Position) Container {
	c.Scroll.Current = current
	return c
}

// NoScrollParent describes a droppable without a scrollable ancestor:
// the container is the droppable itself and it never scrolls.
func NoScrollParent(withMargin geom.Spacing) Container {
	return Container{Bounds: withMargin}
}

// Droppable is a measured drop target.
type Droppable struct {
	ID        string    `json:"id" yaml:"id"`
	Page      Page      `json:"page" yaml:"page"`
	Container Container `json:"container" yaml:"container"`
}

// NewDroppable builds a droppable. A nil container means no scroll parent.
func NewDroppable(id string, box, margin geom.Spacing, container *Container) Droppable {
	page := NewPage(box, margin)
	c := NoScrollParent(page.WithMargin.Spacing)
	if container != nil {
		c = *container
	}
	return Droppable{ID: id, Page: page, Container: c}
}

// Draggable is the measured item being dragged.
type Draggable struct {
	ID          string `json:"id" yaml:"id"`
	DroppableID string `json:"droppableId,omitempty" yaml:"droppableId,omitempty"`
	Page        Page   `json:"page" yaml:"page"`
}

// NewDraggable builds a draggable from its border box and margin.
func NewDraggable(id, droppableID string, box, margin geom.Spacing) Draggable {
	return Draggable{ID: id, DroppableID: droppableID, Page: NewPage(box, margin)}
}
