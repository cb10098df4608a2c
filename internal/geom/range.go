package geom

// Range is an inclusive scalar interval.
type Range struct {
	Lower float64
	Upper float64
}

// WithinRange returns a reusable predicate for lower <= v <= upper.
// When lower > upper the range rejects every value.
func WithinRange(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper}
}

// Contains reports whether v lies inside the range, edges inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}
