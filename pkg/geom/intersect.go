package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// HitKind classifies the result of a segment/edge intersection test.
type HitKind int

const (
	HitNone     HitKind = iota // no intersection contributed by the edge
	HitCrossing                // proper crossing at parameter T
	HitOverlap                 // collinear overlap over [T0, T1]
)

// Hit is the result of intersecting a segment with a polygon edge.
// For HitCrossing only T is meaningful; for HitOverlap, T0 and T1 bound
// the overlapping span in the segment's parametric range.
type Hit struct {
	Kind   HitKind
	T      float64
	T0, T1 float64
}

// IntersectSegmentEdge intersects the segment s with the edge a-b.
//
// The parallel branch and the crossing branch share the single Tolerance
// constant: the crossing determinant is computed on unit directions, so a
// magnitude below Tolerance means numerically parallel. Parallel and
// coincident edges fall back to a 1D overlap computed on the dominant axis
// of the segment.
func IntersectSegmentEdge(s Segment, a, b v2.Vec) Hit {
	d1 := s.Dir()
	d2 := b.Sub(a)
	l1 := d1.Length()
	l2 := d2.Length()
	if l1 < Tolerance || l2 < Tolerance {
		return Hit{Kind: HitNone}
	}

	denom := Cross2(d1, d2)
	if math.Abs(denom/(l1*l2)) < Tolerance {
		// Parallel. Coincident only if a sits on the segment's carrier line.
		perp := math.Abs(Cross2(d1.DivScalar(l1), a.Sub(s.A)))
		if perp >= Tolerance {
			return Hit{Kind: HitNone}
		}
		return collinearOverlap(s, a, b, l1)
	}

	w := a.Sub(s.A)
	t := Cross2(w, d2) / denom
	u := Cross2(w, d1) / denom

	tEps := Tolerance / l1
	uEps := Tolerance / l2
	if t < -tEps || t > 1+tEps || u < -uEps || u > 1+uEps {
		return Hit{Kind: HitNone}
	}
	return Hit{Kind: HitCrossing, T: Clamp01(t)}
}

// collinearOverlap projects the edge endpoints onto the dominant axis of
// the segment and computes the 1D overlap with [0, 1] directly.
func collinearOverlap(s Segment, a, b v2.Vec, segLen float64) Hit {
	d := s.Dir()
	var ta, tb float64
	if math.Abs(d.X) >= math.Abs(d.Y) {
		ta = (a.X - s.A.X) / d.X
		tb = (b.X - s.A.X) / d.X
	} else {
		ta = (a.Y - s.A.Y) / d.Y
		tb = (b.Y - s.A.Y) / d.Y
	}

	lo, hi := MinMax(ta, tb)
	lo = math.Max(lo, 0)
	hi = math.Min(hi, 1)

	// Disjoint collinear ranges (or a touch shorter than Tolerance)
	// contribute nothing.
	if hi-lo <= Tolerance/segLen {
		return Hit{Kind: HitNone}
	}
	return Hit{Kind: HitOverlap, T0: lo, T1: hi}
}
