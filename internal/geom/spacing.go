package geom

// Spacing describes an axis-aligned box by its four edges.
//
// A box with Right < Left or Bottom < Top is inverted and stands for an empty
// region; containment checks against it always fail.
type Spacing struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Width returns Right - Left. It is negative for inverted boxes.
func (s Spacing) Width() float64 {
	return s.Right - s.Left
}

// Height returns Bottom - Top. It is negative for inverted boxes.
func (s Spacing) Height() float64 {
	return s.Bottom - s.Top
}

// Center returns the midpoint of the box.
func (s Spacing) Center() Position {
	return Position{
		X: (s.Left + s.Right) / 2,
		Y: (s.Top + s.Bottom) / 2,
	}
}

// Inverted reports whether the box encloses no area.
func (s Spacing) Inverted() bool {
	return s.Right < s.Left || s.Bottom < s.Top
}

// TranslateBox shifts every edge of box by delta.
func TranslateBox(box Spacing, delta Position) Spacing {
	return Spacing{
		Top:    box.Top + delta.Y,
		Right:  box.Right + delta.X,
		Bottom: box.Bottom + delta.Y,
		Left:   box.Left + delta.X,
	}
}

// InflateBox grows box outward by padding on every side.
func InflateBox(box Spacing, padding Position) Spacing {
	return Spacing{
		Top:    box.Top - padding.Y,
		Right:  box.Right + padding.X,
		Bottom: box.Bottom + padding.Y,
		Left:   box.Left - padding.X,
	}
}

// Intersect clips a to b. Boxes that do not overlap produce an inverted result.
func Intersect(a, b Spacing) Spacing {
	return Spacing{
		Top:    max(a.Top, b.Top),
		Right:  min(a.Right, b.Right),
		Bottom: min(a.Bottom, b.Bottom),
		Left:   max(a.Left, b.Left),
	}
}
