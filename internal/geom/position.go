// Package geom provides the 2D position, box and range arithmetic used by hit testing.
package geom

// Position is a 2D point or offset.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Origin is the zero position.
var Origin = Position{}

// Subtract returns a - b.
func Subtract(a, b Position) Position {
	return Position{X: a.X - b.X, Y: a.Y - b.Y}
}

// Add returns a + b.
func Add(a, b Position) Position {
	return Position{X: a.X + b.X, Y: a.Y + b.Y}
}

// Negate flips the sign of both components.
func Negate(p Position) Position {
	return Position{X: -p.X, Y: -p.Y}
}
