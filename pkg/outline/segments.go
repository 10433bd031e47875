package outline

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// WallSegment is a straight meshable wall run on the section's plan
// centerline. Runs are pre-split at web junctions and opening jambs so
// that adjacent panels meet at shared grid columns and the registry can
// merge the junction nodes.
type WallSegment struct {
	A, B      v2.Vec
	Thickness float64
}

// Length returns the plan length of the run.
func (w WallSegment) Length() float64 {
	return w.B.Sub(w.A).Length()
}

// Chord is a connector-beam span between two separated wall segments.
// Both endpoints are characteristic points of the outline that the wall
// mesh has already populated.
type Chord struct {
	A, B v2.Vec
}

// WallSegments returns the centerline runs of a section, translated by
// the wall's global offset. Order is fixed: an identical section always
// produces the identical run sequence.
func WallSegments(data SectionData, offset v2.Vec) []WallSegment {
	var segs []WallSegment
	switch s := data.(type) {
	case ISection:
		segs = iSegments(s)
	case TubeSection:
		segs = tubeSegments(s)
	}
	for i := range segs {
		segs[i].A = segs[i].A.Add(offset)
		segs[i].B = segs[i].B.Add(offset)
	}
	return segs
}

// iSegments lays out an I-section as five runs: each flange split at the
// web junction, plus the web spanning between the flange centerlines.
func iSegments(s ISection) []WallSegment {
	b := s.FlangeWidth / 2
	yc := (s.WebLength + s.Thickness) / 2 // flange centerline offset
	t := s.Thickness

	return []WallSegment{
		{A: v2.Vec{X: -b, Y: -yc}, B: v2.Vec{X: 0, Y: -yc}, Thickness: t},
		{A: v2.Vec{X: 0, Y: -yc}, B: v2.Vec{X: b, Y: -yc}, Thickness: t},
		{A: v2.Vec{X: -b, Y: yc}, B: v2.Vec{X: 0, Y: yc}, Thickness: t},
		{A: v2.Vec{X: 0, Y: yc}, B: v2.Vec{X: b, Y: yc}, Thickness: t},
		{A: v2.Vec{X: 0, Y: -yc}, B: v2.Vec{X: 0, Y: yc}, Thickness: t},
	}
}

// tubeSegments lays out a tube as four centerline walls meeting at the
// corners, with the opening wall(s) replaced by their two pier runs.
func tubeSegments(s TubeSection) []WallSegment {
	cx := (s.Width - s.Thickness) / 2
	cy := (s.Depth - s.Thickness) / 2
	ho := s.OpeningWidth / 2
	t := s.Thickness

	var segs []WallSegment

	// Bottom wall (-y).
	if s.Placement == PlacementBottom || s.Placement == PlacementBoth {
		segs = append(segs,
			WallSegment{A: v2.Vec{X: -cx, Y: -cy}, B: v2.Vec{X: -ho, Y: -cy}, Thickness: t},
			WallSegment{A: v2.Vec{X: ho, Y: -cy}, B: v2.Vec{X: cx, Y: -cy}, Thickness: t},
		)
	} else {
		segs = append(segs, WallSegment{A: v2.Vec{X: -cx, Y: -cy}, B: v2.Vec{X: cx, Y: -cy}, Thickness: t})
	}

	// Top wall (+y).
	if s.Placement == PlacementTop || s.Placement == PlacementBoth {
		segs = append(segs,
			WallSegment{A: v2.Vec{X: -cx, Y: cy}, B: v2.Vec{X: -ho, Y: cy}, Thickness: t},
			WallSegment{A: v2.Vec{X: ho, Y: cy}, B: v2.Vec{X: cx, Y: cy}, Thickness: t},
		)
	} else {
		segs = append(segs, WallSegment{A: v2.Vec{X: -cx, Y: cy}, B: v2.Vec{X: cx, Y: cy}, Thickness: t})
	}

	// Side walls.
	segs = append(segs,
		WallSegment{A: v2.Vec{X: -cx, Y: -cy}, B: v2.Vec{X: -cx, Y: cy}, Thickness: t},
		WallSegment{A: v2.Vec{X: cx, Y: -cy}, B: v2.Vec{X: cx, Y: cy}, Thickness: t},
	)
	return segs
}

// CouplingChords returns the connector-beam chords of a section,
// translated by the wall's global offset. An I-section yields exactly two
// parallel chords, one per flange-end pair. A tube yields one chord per
// opening, so PlacementBoth duplicates the chord at both ends.
func CouplingChords(data SectionData, offset v2.Vec) []Chord {
	var chords []Chord
	switch s := data.(type) {
	case ISection:
		b := s.FlangeWidth / 2
		yc := (s.WebLength + s.Thickness) / 2
		chords = []Chord{
			{A: v2.Vec{X: -b, Y: -yc}, B: v2.Vec{X: -b, Y: yc}},
			{A: v2.Vec{X: b, Y: -yc}, B: v2.Vec{X: b, Y: yc}},
		}
	case TubeSection:
		cy := (s.Depth - s.Thickness) / 2
		ho := s.OpeningWidth / 2
		if s.Placement == PlacementTop || s.Placement == PlacementBoth {
			chords = append(chords, Chord{A: v2.Vec{X: -ho, Y: cy}, B: v2.Vec{X: ho, Y: cy}})
		}
		if s.Placement == PlacementBottom || s.Placement == PlacementBoth {
			chords = append(chords, Chord{A: v2.Vec{X: -ho, Y: -cy}, B: v2.Vec{X: ho, Y: -cy}})
		}
	}
	for i := range chords {
		chords[i].A = chords[i].A.Add(offset)
		chords[i].B = chords[i].B.Add(offset)
	}
	return chords
}
