// Package trim removes the portions of a plan-view line segment that fall
// inside a wall footprint. Surviving outside sub-segments keep the input
// endpoints' connection tags; endpoints minted by an intersection are
// tagged derived.
package trim

import (
	"fmt"
	"sort"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ahertel/ossature/pkg/geom"
	"github.com/ahertel/ossature/pkg/model"
	"github.com/ahertel/ossature/pkg/outline"
)

// span is a parametric range of the input segment known to lie on the
// footprint boundary via a collinear edge overlap. Boundary-coincident
// spans count as inside the footprint.
type span struct {
	t0, t1 float64
}

// Trim intersects a segment against an outline and returns the surviving
// outside sub-segments, ordered along the input segment. A zero-length
// segment is returned unchanged. A segment that never meets the outline
// is returned unchanged when its midpoint lies outside the footprint and
// discarded entirely when it lies inside.
func Trim(seg geom.Segment, o *outline.Outline) ([]geom.Segment, error) {
	if seg.IsDegenerate() {
		return []geom.Segment{seg}, nil
	}

	segLen := seg.Length()
	tEps := geom.Tolerance / segLen

	var ts []float64
	var spans []span
	for _, loop := range o.Loops {
		for i := 0; i+1 < len(loop); i++ {
			a := vec(loop[i])
			b := vec(loop[i+1])
			switch hit := geom.IntersectSegmentEdge(seg, a, b); hit.Kind {
			case geom.HitCrossing:
				ts = append(ts, hit.T)
			case geom.HitOverlap:
				spans = append(spans, span{t0: hit.T0, t1: hit.T1})
				ts = append(ts, hit.T0, hit.T1)
			}
		}
	}

	cuts := buildCuts(ts, tEps)

	// Classify every interval at its midpoint and retain the outside ones,
	// merging runs of adjacent survivors.
	poly := o.Polygon()
	var kept []span
	for i := 0; i+1 < len(cuts); i++ {
		t0, t1 := cuts[i], cuts[i+1]
		inside, err := classify(seg, (t0+t1)/2, spans, poly, o, tEps)
		if err != nil {
			return nil, err
		}
		if inside {
			continue
		}
		if n := len(kept); n > 0 && kept[n-1].t1 == t0 {
			kept[n-1].t1 = t1
		} else {
			kept = append(kept, span{t0: t0, t1: t1})
		}
	}

	subs := make([]geom.Segment, 0, len(kept))
	for _, k := range kept {
		sub := geom.Segment{
			A:     seg.Point(k.t0),
			B:     seg.Point(k.t1),
			ConnA: geom.ConnDerived,
			ConnB: geom.ConnDerived,
		}
		if k.t0 == 0 {
			sub.A = seg.A
			sub.ConnA = seg.ConnA
		}
		if k.t1 == 1 {
			sub.B = seg.B
			sub.ConnB = seg.ConnB
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// buildCuts sorts the intersection parameters, drops duplicates within
// tolerance, and brackets them with the segment ends.
func buildCuts(ts []float64, tEps float64) []float64 {
	sort.Float64s(ts)
	cuts := []float64{0}
	for _, t := range ts {
		if t <= cuts[len(cuts)-1]+tEps {
			continue
		}
		if t >= 1-tEps {
			continue
		}
		cuts = append(cuts, t)
	}
	return append(cuts, 1)
}

// classify reports whether the interval midpoint at parameter tm lies
// inside the core footprint. Midpoints covered by a collinear boundary
// span are inside by definition; everything else goes through the
// point-in-polygon test (inside the outer loop and inside no hole). A
// midpoint that sits on the boundary without a covering span means the
// outline itself is defective.
func classify(seg geom.Segment, tm float64, spans []span, poly orb.Polygon, o *outline.Outline, tEps float64) (bool, error) {
	for _, sp := range spans {
		if tm >= sp.t0-tEps && tm <= sp.t1+tEps {
			return true, nil
		}
	}

	pt := seg.Point(tm)
	if onBoundary(pt, o) {
		return false, &model.TrimClassificationError{
			Message: fmt.Sprintf("midpoint (%g, %g) lies on the outline boundary outside any collinear overlap", pt.X, pt.Y),
		}
	}
	return planar.PolygonContains(poly, orb.Point{pt.X, pt.Y}), nil
}

// onBoundary reports whether a point is within tolerance of any loop edge.
func onBoundary(p v2.Vec, o *outline.Outline) bool {
	for _, loop := range o.Loops {
		for i := 0; i+1 < len(loop); i++ {
			if geom.DistPointSegment(p, vec(loop[i]), vec(loop[i+1])) < geom.Tolerance {
				return true
			}
		}
	}
	return false
}

func vec(p orb.Point) v2.Vec {
	return v2.Vec{X: p[0], Y: p[1]}
}
