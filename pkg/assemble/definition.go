package assemble

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/ahertel/ossature/pkg/model"
	"github.com/ahertel/ossature/pkg/outline"
)

// WallDef places one structural wall core in plan.
type WallDef struct {
	Name       string
	Section    outline.SectionData
	Offset     v2.Vec // global plan offset of the section's local origin
	SectionRef string // solver section/material reference
}

// ColumnDef places a vertical column running the full building height,
// one line element per story.
type ColumnDef struct {
	Name       string
	X, Y       float64
	SectionRef string
}

// BeamDef is an independent plan-level frame beam. It is trimmed against
// every wall footprint on its floor; only the outside sub-segments
// become elements.
type BeamDef struct {
	Name       string
	Floor      int // 1-based floor level the beam sits on
	A, B       v2.Vec
	SectionRef string
}

// SlabDef is a rectangular floor slab repeated at every floor level.
type SlabDef struct {
	Name       string
	Origin     v2.Vec // min corner in plan
	Width      float64
	Depth      float64
	Nx, Ny     int
	SectionRef string
}

// Definition is the complete parametric input of one build.
type Definition struct {
	Stories        int
	StoryHeight    float64
	WallDivisions  int // divisions along each wall run
	StoryDivisions int // divisions over the height of one story
	Triangular     bool

	Walls   []WallDef
	Columns []ColumnDef
	Beams   []BeamDef
	Slabs   []SlabDef
}

// TotalHeight returns the building height.
func (d Definition) TotalHeight() float64 {
	return float64(d.Stories) * d.StoryHeight
}

// LevelZ returns the elevation of a 1-based floor level.
func (d Definition) LevelZ(floor int) float64 {
	return float64(floor) * d.StoryHeight
}

// validate rejects a malformed definition before any geometry is built.
func (d Definition) validate() error {
	if d.Stories < 1 {
		return &model.GeometryError{Message: fmt.Sprintf("stories %d must be at least 1", d.Stories)}
	}
	if d.StoryHeight <= 0 {
		return &model.GeometryError{Message: fmt.Sprintf("story height %g must be positive", d.StoryHeight)}
	}
	if d.WallDivisions < 1 || d.StoryDivisions < 1 {
		return &model.GeometryError{Message: fmt.Sprintf("divisions %d x %d must be at least 1", d.WallDivisions, d.StoryDivisions)}
	}

	seen := make(map[string]bool)
	for _, w := range d.Walls {
		if w.Name == "" {
			return &model.GeometryError{Message: "wall without a name"}
		}
		if seen[w.Name] {
			return &model.GeometryError{Context: w.Name, Message: "duplicate wall name"}
		}
		seen[w.Name] = true
		if w.Section == nil {
			return &model.GeometryError{Context: w.Name, Message: "wall without a section"}
		}
	}

	for _, b := range d.Beams {
		if b.Floor < 1 || b.Floor > d.Stories {
			return &model.GeometryError{
				Context: b.Name,
				Message: fmt.Sprintf("floor %d outside 1..%d", b.Floor, d.Stories),
			}
		}
	}

	for _, s := range d.Slabs {
		if s.Width <= 0 || s.Depth <= 0 {
			return &model.GeometryError{
				Context: s.Name,
				Message: fmt.Sprintf("slab size %g x %g must be positive", s.Width, s.Depth),
			}
		}
		if s.Nx < 1 || s.Ny < 1 {
			return &model.GeometryError{
				Context: s.Name,
				Message: fmt.Sprintf("slab divisions %d x %d must be at least 1", s.Nx, s.Ny),
			}
		}
	}
	return nil
}
