package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ConnectionKind tags a segment endpoint with how it came to exist.
type ConnectionKind int

const (
	ConnOriginal ConnectionKind = iota // endpoint of the untouched input segment
	ConnDerived                        // endpoint created by an intersection
)

func (k ConnectionKind) String() string {
	switch k {
	case ConnOriginal:
		return "original"
	case ConnDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Segment is a plan-view line with a parametric range [0, 1] from A to B.
// Trimming consumes segments and produces sub-segments; the connection
// kinds record whether each endpoint survived unmodified or was minted by
// an intersection.
type Segment struct {
	A, B         v2.Vec
	ConnA, ConnB ConnectionKind
}

// NewSegment returns a segment with both endpoints tagged original.
func NewSegment(a, b v2.Vec) Segment {
	return Segment{A: a, B: b, ConnA: ConnOriginal, ConnB: ConnOriginal}
}

// Point evaluates the segment at parameter t.
func (s Segment) Point(t float64) v2.Vec {
	return s.A.Add(s.B.Sub(s.A).MulScalar(t))
}

// Dir returns the unnormalized direction vector B - A.
func (s Segment) Dir() v2.Vec {
	return s.B.Sub(s.A)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Dir().Length()
}

// Mid returns the midpoint.
func (s Segment) Mid() v2.Vec {
	return s.Point(0.5)
}

// IsDegenerate reports whether the segment is shorter than Tolerance.
func (s Segment) IsDegenerate() bool {
	return s.Length() < Tolerance
}
