// Package mesh tessellates rectangular wall and slab panels into regular
// node/element grids. Every grid coordinate is resolved through the
// shared node registry, never a private counter: that is the mechanism by
// which adjacent panels meeting at an edge or corner reference the
// literal same node identifiers.
package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ahertel/ossature/pkg/model"
)

// Panel is a rectangular region to tessellate: an origin, two in-plane
// unit axes, extents, and integer division counts along each axis. A
// panel is mutated only during its own generation pass, then frozen into
// elements.
type Panel struct {
	Name       string
	Origin     v3.Vec
	U, V       v3.Vec // unit axes; U spans Width, V spans Height
	Width      float64
	Height     float64
	Nx, Ny     int
	Floor      int  // floor tag for the panel's nodes (model.FloorUnset allowed)
	Section    string
	Triangular bool

	// Exclude drops cell (i, j) from element emission while keeping the
	// grid regular. Nil keeps every cell. Used for the conservative slab
	// exclusion around wall footprints.
	Exclude func(i, j int) bool
}

// Generate tessellates the panel into an (Nx+1) x (Ny+1) node grid and
// emits shell elements with counter-clockwise node ordering. Elements
// carry no identifiers yet; the build finalization numbers them.
func Generate(reg *model.NodeRegistry, p Panel) ([]model.Element, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, &model.GeometryError{
			Context: p.Name,
			Message: fmt.Sprintf("panel size %g x %g must be positive", p.Width, p.Height),
		}
	}
	if p.Nx < 1 || p.Ny < 1 {
		return nil, &model.GeometryError{
			Context: p.Name,
			Message: fmt.Sprintf("division counts %d x %d must be at least 1", p.Nx, p.Ny),
		}
	}

	du := p.Width / float64(p.Nx)
	dv := p.Height / float64(p.Ny)

	// Row-major grid of registry-resolved identifiers. The iteration
	// order is fixed so registry lookups reproduce run to run.
	grid := make([][]model.NodeID, p.Ny+1)
	for j := 0; j <= p.Ny; j++ {
		grid[j] = make([]model.NodeID, p.Nx+1)
		for i := 0; i <= p.Nx; i++ {
			pos := p.Origin.
				Add(p.U.MulScalar(float64(i) * du)).
				Add(p.V.MulScalar(float64(j) * dv))
			grid[j][i] = reg.GetOrCreate(pos, p.Floor)
		}
	}

	var elems []model.Element
	for j := 0; j < p.Ny; j++ {
		for i := 0; i < p.Nx; i++ {
			if p.Exclude != nil && p.Exclude(i, j) {
				continue
			}
			n00 := grid[j][i]
			n10 := grid[j][i+1]
			n11 := grid[j+1][i+1]
			n01 := grid[j+1][i]

			if p.Triangular {
				// Fixed diagonal split from (i, j) to (i+1, j+1),
				// applied identically across the whole mesh.
				elems = append(elems,
					model.Element{
						Kind:    model.ElemTri,
						Nodes:   []model.NodeID{n00, n10, n11},
						Section: p.Section,
						Data:    model.TriShellData{Member: p.Name, Row: j, Col: i, Half: 0},
					},
					model.Element{
						Kind:    model.ElemTri,
						Nodes:   []model.NodeID{n00, n11, n01},
						Section: p.Section,
						Data:    model.TriShellData{Member: p.Name, Row: j, Col: i, Half: 1},
					},
				)
				continue
			}

			elems = append(elems, model.Element{
				Kind:    model.ElemQuad,
				Nodes:   []model.NodeID{n00, n10, n11, n01},
				Section: p.Section,
				Data:    model.QuadShellData{Member: p.Name, Row: j, Col: i},
			})
		}
	}
	return elems, nil
}
