package dimension

import "sort"

// Snapshot is one frame's worth of measurements.
type Snapshot struct {
	Droppables []Droppable `json:"droppables" yaml:"droppables"`
	Draggable  *Draggable  `json:"draggable,omitempty" yaml:"draggable,omitempty"`
}

// Droppable returns the droppable with the given id.
func (s Snapshot) Droppable(id string) (Droppable, bool) {
	for _, d := range s.Droppables {
		if d.ID == id {
			return d, true
		}
	}
	return Droppable{}, false
}

// IDs returns the droppable ids in sorted order.
func (s Snapshot) IDs() []string {
	out := make([]string, 0, len(s.Droppables))
	for _, d := range s.Droppables {
		out = append(out, d.ID)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy so callers can hold it while the original changes.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{}
	if s.Droppables != nil {
		out.Droppables = make([]Droppable, len(s.Droppables))
		copy(out.Droppables, s.Droppables)
	}
	if s.Draggable != nil {
		d := *s.Draggable
		out.Draggable = &d
	}
	return out
}

// Normalize recomputes derived fragment fields from the edges.
// Files written by hand usually only carry the edges. A droppable without a
// container gets NoScrollParent.
func (s Snapshot) Normalize() Snapshot {
	out := s.Clone()
	for i := range out.Droppables {
		d := &out.Droppables[i]
		d.Page = normalizePage(d.Page)
		if d.Container == (Container{}) {
			d.Container = NoScrollParent(d.Page.WithMargin.Spacing)
		}
	}
	if out.Draggable != nil {
		out.Draggable.Page = normalizePage(out.Draggable.Page)
	}
	return out
}

// normalizePage refreshes both fragments of a page.
func normalizePage(p Page) Page {
	return Page{
		WithoutMargin: NewFragment(p.WithoutMargin.Spacing),
		WithMargin:    NewFragment(p.WithMargin.Spacing),
	}
}
