// Package coupling derives connector beams joining the separated wall
// segments of a section: flange-end pairs of an I-core, opening jambs of
// a tube. Endpoints are resolved against the registry the wall mesh
// already populated; a coupling beam never mints a node.
package coupling

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ahertel/ossature/pkg/model"
	"github.com/ahertel/ossature/pkg/outline"
)

// Generate emits one coupling element per chord per level. Every endpoint
// must resolve to an existing wall-mesh node; a floating endpoint is a
// ConnectivityError naming the wall and the coordinate.
func Generate(reg *model.NodeRegistry, data outline.SectionData, off v2.Vec, levels []float64, wallName, section string) ([]model.Element, error) {
	chords := outline.CouplingChords(data, off)
	if len(chords) == 0 {
		return nil, nil
	}

	var elems []model.Element
	for _, z := range levels {
		for _, c := range chords {
			a := v3.Vec{X: c.A.X, Y: c.A.Y, Z: z}
			b := v3.Vec{X: c.B.X, Y: c.B.Y, Z: z}

			na, err := resolve(reg, a, wallName)
			if err != nil {
				return nil, err
			}
			nb, err := resolve(reg, b, wallName)
			if err != nil {
				return nil, err
			}

			span := b.Sub(a).Length()
			elems = append(elems, model.Element{
				Kind:    model.ElemCoupling,
				Nodes:   []model.NodeID{na, nb},
				Section: section,
				Data: model.CouplingData{
					Parent:      wallName,
					Span:        span,
					Orientation: Orientation(c.B.X-c.A.X, c.B.Y-c.A.Y),
				},
			})
		}
	}
	return elems, nil
}

// resolve looks an endpoint up in the registry without allocating.
func resolve(reg *model.NodeRegistry, p v3.Vec, wallName string) (model.NodeID, error) {
	id, ok := reg.Lookup(p)
	if !ok {
		return 0, &model.ConnectivityError{
			Context: wallName,
			Message: fmt.Sprintf("coupling endpoint (%g, %g, %g) matches no wall-mesh node", p.X, p.Y, p.Z),
		}
	}
	return id, nil
}

// Orientation returns the local orientation vector for a beam with
// in-plane direction (dx, dy): the in-plane perpendicular, normalized.
// This keeps the beam's strong-bending axis vertical regardless of its
// plan angle.
func Orientation(dx, dy float64) v3.Vec {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return v3.Vec{X: 1}
	}
	return v3.Vec{X: -dy / l, Y: dx / l}
}
