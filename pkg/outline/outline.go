package outline

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/paulmach/orb"

	"github.com/ahertel/ossature/pkg/model"
)

// Outline is an ordered sequence of closed loops describing a wall
// cross-section footprint in plan. The first loop is the outer boundary,
// the rest are holes. Every loop is closed (first == last point); winding
// is consistent within a loop but never compared across loops.
type Outline struct {
	Loops []orb.Ring
}

// Outer returns the outer boundary loop.
func (o *Outline) Outer() orb.Ring {
	return o.Loops[0]
}

// Holes returns the hole loops, if any.
func (o *Outline) Holes() []orb.Ring {
	return o.Loops[1:]
}

// Polygon returns the outline as an orb polygon (outer ring + holes).
func (o *Outline) Polygon() orb.Polygon {
	return orb.Polygon(o.Loops)
}

// Bound returns the bounding box of the outer loop.
func (o *Outline) Bound() orb.Bound {
	return o.Outer().Bound()
}

// Validate checks that every loop is closed and has at least three
// distinct vertices.
func (o *Outline) Validate() error {
	if len(o.Loops) == 0 {
		return &model.GeometryError{Message: "outline has no loops"}
	}
	for i, loop := range o.Loops {
		if len(loop) < 4 {
			return &model.GeometryError{Message: fmt.Sprintf("loop %d has %d points, need at least 3 vertices", i, len(loop))}
		}
		if !loop.Closed() {
			return &model.GeometryError{Message: fmt.Sprintf("loop %d is not closed", i)}
		}
	}
	return nil
}

// Generate produces the canonical outline for a section, translated by
// the wall's global plan offset. Dimensions are validated before any loop
// is emitted.
func Generate(data SectionData, offset v2.Vec) (*Outline, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	var loops []orb.Ring
	switch s := data.(type) {
	case ISection:
		loops = []orb.Ring{iSectionLoop(s)}
	case TubeSection:
		loops = tubeLoops(s)
	default:
		return nil, &model.GeometryError{Message: fmt.Sprintf("unsupported section type %T", data)}
	}

	for _, loop := range loops {
		translateRing(loop, offset)
	}
	return &Outline{Loops: loops}, nil
}

// iSectionLoop builds the single concave 12-vertex loop of an I-shaped
// section, counter-clockwise from the bottom-left flange corner.
func iSectionLoop(s ISection) orb.Ring {
	b := s.FlangeWidth / 2
	w := s.Thickness / 2
	yi := s.WebLength / 2      // inner flange face
	yo := yi + s.Thickness     // outer flange face

	return closeRing(orb.Ring{
		{-b, -yo},
		{b, -yo},
		{b, -yi},
		{w, -yi},
		{w, yi},
		{b, yi},
		{b, yo},
		{-b, yo},
		{-b, yi},
		{-w, yi},
		{-w, -yi},
		{-b, -yi},
	})
}

// tubeLoops builds the outer rectangle of a tube section plus one hole
// loop per opening. Both openings of PlacementBoth are emitted as two
// separate closed loops so downstream hole classification stays
// unambiguous.
func tubeLoops(s TubeSection) []orb.Ring {
	hw := s.Width / 2
	hd := s.Depth / 2
	ho := s.OpeningWidth / 2

	loops := []orb.Ring{closeRing(orb.Ring{
		{-hw, -hd},
		{hw, -hd},
		{hw, hd},
		{-hw, hd},
	})}

	if s.Placement == PlacementTop || s.Placement == PlacementBoth {
		loops = append(loops, closeRing(orb.Ring{
			{-ho, hd - s.Thickness},
			{ho, hd - s.Thickness},
			{ho, hd},
			{-ho, hd},
		}))
	}
	if s.Placement == PlacementBottom || s.Placement == PlacementBoth {
		loops = append(loops, closeRing(orb.Ring{
			{-ho, -hd},
			{ho, -hd},
			{ho, -hd + s.Thickness},
			{-ho, -hd + s.Thickness},
		}))
	}
	return loops
}

// closeRing appends the closing point to a loop.
func closeRing(r orb.Ring) orb.Ring {
	return append(r, r[0])
}

// translateRing shifts every point of a loop in place.
func translateRing(r orb.Ring, offset v2.Vec) {
	for i := range r {
		r[i][0] += offset.X
		r[i][1] += offset.Y
	}
}
