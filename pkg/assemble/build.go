package assemble

import (
	"fmt"
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/ahertel/ossature/pkg/coupling"
	"github.com/ahertel/ossature/pkg/geom"
	"github.com/ahertel/ossature/pkg/mesh"
	"github.com/ahertel/ossature/pkg/model"
	"github.com/ahertel/ossature/pkg/outline"
	"github.com/ahertel/ossature/pkg/trim"
)

// Builder runs builds. It is stateless between builds: every Build call
// creates its own registry, so models from separate calls never share
// identifiers.
type Builder struct {
	log *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a structured logger for build-stage reporting.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder creates a Builder. Without options it logs nowhere.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// wallCtx pairs a wall definition with its generated outline for the
// passes that follow outline generation.
type wallCtx struct {
	def WallDef
	out *outline.Outline
}

// Build assembles the mesh for a definition. The stages run in a fixed
// dependency order and share the single registry created here; any error
// aborts the whole build.
func (b *Builder) Build(def Definition) (*model.Model, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	reg := model.NewRegistry()
	var elements []model.Element

	// Outlines.
	walls := make([]wallCtx, 0, len(def.Walls))
	for _, w := range def.Walls {
		o, err := outline.Generate(w.Section, w.Offset)
		if err != nil {
			return nil, fmt.Errorf("wall %s: %w", w.Name, err)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("wall %s: %w", w.Name, err)
		}
		walls = append(walls, wallCtx{def: w, out: o})
	}
	b.log.Info("outlines generated", zap.Int("walls", len(walls)))

	// Wall panels. Runs are meshed in definition order so registry
	// lookups reproduce run to run.
	for _, w := range walls {
		n, err := b.meshWall(reg, def, w.def, &elements)
		if err != nil {
			return nil, err
		}
		b.log.Debug("wall meshed", zap.String("wall", w.def.Name), zap.Int("panels", n))
	}

	// Slab panels with the conservative bounding-box exclusion around
	// wall footprints.
	if err := b.meshSlabs(reg, def, walls, &elements); err != nil {
		return nil, err
	}

	// Columns.
	for _, c := range def.Columns {
		b.meshColumn(reg, def, c, &elements)
	}

	// Coupling beams, one set per story top.
	levels := make([]float64, def.Stories)
	for k := 1; k <= def.Stories; k++ {
		levels[k-1] = def.LevelZ(k)
	}
	for _, w := range walls {
		beams, err := coupling.Generate(reg, w.def.Section, w.def.Offset, levels, w.def.Name, w.def.SectionRef)
		if err != nil {
			return nil, err
		}
		elements = append(elements, beams...)
	}

	// Frame beams, trimmed against every wall footprint on their floor.
	for _, bm := range def.Beams {
		if err := b.meshBeam(reg, def, bm, walls, &elements); err != nil {
			return nil, err
		}
	}

	m := model.Finalize(reg, elements)
	b.log.Info("build finished",
		zap.String("build_id", m.BuildID),
		zap.Int("nodes", len(m.Nodes)),
		zap.Int("elements", len(m.Elements)),
		zap.Int("merged_coordinates", reg.Hits()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m, nil
}

// meshWall tessellates every centerline run of a wall over the full
// building height.
func (b *Builder) meshWall(reg *model.NodeRegistry, def Definition, w WallDef, elements *[]model.Element) (int, error) {
	runs := outline.WallSegments(w.Section, w.Offset)
	for i, run := range runs {
		dir := run.B.Sub(run.A).DivScalar(run.Length())
		p := mesh.Panel{
			Name:       fmt.Sprintf("%s/run-%d", w.Name, i),
			Origin:     v3.Vec{X: run.A.X, Y: run.A.Y, Z: 0},
			U:          v3.Vec{X: dir.X, Y: dir.Y},
			V:          v3.Vec{Z: 1},
			Width:      run.Length(),
			Height:     def.TotalHeight(),
			Nx:         def.WallDivisions,
			Ny:         def.Stories * def.StoryDivisions,
			Floor:      model.FloorUnset,
			Section:    w.SectionRef,
			Triangular: def.Triangular,
		}
		elems, err := mesh.Generate(reg, p)
		if err != nil {
			return 0, err
		}
		*elements = append(*elements, elems...)
	}
	return len(runs), nil
}

// meshSlabs tessellates every slab at every floor level. A slab cell is
// dropped when its plan rectangle intersects the bounding box of any
// wall footprint: deliberately over-exclusive, never overlapping a wall.
func (b *Builder) meshSlabs(reg *model.NodeRegistry, def Definition, walls []wallCtx, elements *[]model.Element) error {
	bounds := make([]orb.Bound, len(walls))
	for i, w := range walls {
		bounds[i] = w.out.Bound()
	}

	for floor := 1; floor <= def.Stories; floor++ {
		z := def.LevelZ(floor)
		for _, s := range def.Slabs {
			dx := s.Width / float64(s.Nx)
			dy := s.Depth / float64(s.Ny)
			origin := s.Origin

			p := mesh.Panel{
				Name:       fmt.Sprintf("%s/floor-%d", s.Name, floor),
				Origin:     v3.Vec{X: origin.X, Y: origin.Y, Z: z},
				U:          v3.Vec{X: 1},
				V:          v3.Vec{Y: 1},
				Width:      s.Width,
				Height:     s.Depth,
				Nx:         s.Nx,
				Ny:         s.Ny,
				Floor:      floor,
				Section:    s.SectionRef,
				Triangular: def.Triangular,
				Exclude: func(i, j int) bool {
					cell := orb.Bound{
						Min: orb.Point{origin.X + float64(i)*dx, origin.Y + float64(j)*dy},
						Max: orb.Point{origin.X + float64(i+1)*dx, origin.Y + float64(j+1)*dy},
					}
					for _, wb := range bounds {
						if cell.Intersects(wb) {
							return true
						}
					}
					return false
				},
			}
			elems, err := mesh.Generate(reg, p)
			if err != nil {
				return err
			}
			*elements = append(*elements, elems...)
		}
	}
	return nil
}

// meshColumn emits one vertical line element per story.
func (b *Builder) meshColumn(reg *model.NodeRegistry, def Definition, c ColumnDef, elements *[]model.Element) {
	for k := 0; k < def.Stories; k++ {
		na := reg.GetOrCreate(v3.Vec{X: c.X, Y: c.Y, Z: def.LevelZ(k)}, k)
		nb := reg.GetOrCreate(v3.Vec{X: c.X, Y: c.Y, Z: def.LevelZ(k + 1)}, k+1)
		*elements = append(*elements, model.Element{
			Kind:    model.ElemLine,
			Nodes:   []model.NodeID{na, nb},
			Section: c.SectionRef,
			Data: model.LineData{
				Member:      c.Name,
				SubIndex:    k,
				ConnA:       geom.ConnOriginal,
				ConnB:       geom.ConnOriginal,
				Orientation: v3.Vec{X: 1},
			},
		})
	}
}

// meshBeam trims a frame beam against every wall footprint on its floor
// and emits the surviving sub-segments as line elements.
func (b *Builder) meshBeam(reg *model.NodeRegistry, def Definition, bm BeamDef, walls []wallCtx, elements *[]model.Element) error {
	parts := []geom.Segment{geom.NewSegment(bm.A, bm.B)}
	for _, w := range walls {
		var next []geom.Segment
		for _, part := range parts {
			subs, err := trim.Trim(part, w.out)
			if err != nil {
				return fmt.Errorf("beam %s against wall %s: %w", bm.Name, w.def.Name, err)
			}
			next = append(next, subs...)
		}
		parts = next
	}

	z := def.LevelZ(bm.Floor)
	for i, part := range parts {
		na := reg.GetOrCreate(v3.Vec{X: part.A.X, Y: part.A.Y, Z: z}, bm.Floor)
		nb := reg.GetOrCreate(v3.Vec{X: part.B.X, Y: part.B.Y, Z: z}, bm.Floor)
		d := part.Dir()
		*elements = append(*elements, model.Element{
			Kind:    model.ElemLine,
			Nodes:   []model.NodeID{na, nb},
			Section: bm.SectionRef,
			Data: model.LineData{
				Member:      bm.Name,
				SubIndex:    i,
				ConnA:       part.ConnA,
				ConnB:       part.ConnB,
				Orientation: coupling.Orientation(d.X, d.Y),
			},
		})
	}
	if len(parts) == 0 {
		b.log.Debug("beam fully inside wall footprint", zap.String("beam", bm.Name))
	}
	return nil
}
