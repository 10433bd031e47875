package assemble

import (
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahertel/ossature/pkg/geom"
	"github.com/ahertel/ossature/pkg/model"
	"github.com/ahertel/ossature/pkg/outline"
)

// coreDef is the reference tower: one I-core, flange width 3000, web
// length 6000, thickness 500, three 3000-high stories, two divisions
// along each run and per story.
func coreDef() Definition {
	return Definition{
		Stories:        3,
		StoryHeight:    3000,
		WallDivisions:  2,
		StoryDivisions: 2,
		Walls: []WallDef{{
			Name: "core",
			Section: outline.ISection{
				FlangeWidth: 3000,
				WebLength:   6000,
				Thickness:   500,
			},
			SectionRef: "w500",
		}},
	}
}

func countKind(m *model.Model, k model.ElementKind) int {
	n := 0
	for _, e := range m.Elements {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func TestBuildICoreNodeArithmetic(t *testing.T) {
	m, err := NewBuilder().Build(coreDef())
	require.NoError(t, err)

	// Five runs, each a 3 x 7 grid of coordinate requests: 105 requests.
	// The two web junction lines are each requested by three panels over
	// seven z-levels, merging 28 requests into existing nodes.
	assert.Len(t, m.Nodes, 77)

	// No two surviving nodes may quantize to the same coordinate.
	seen := make(map[[3]int64]model.NodeID)
	for _, n := range m.Nodes {
		k := [3]int64{geom.Quantize(n.Pos.X), geom.Quantize(n.Pos.Y), geom.Quantize(n.Pos.Z)}
		if prev, ok := seen[k]; ok {
			t.Fatalf("nodes %d and %d share coordinate %v", prev, n.ID, n.Pos)
		}
		seen[k] = n.ID
	}

	// 5 runs x 2 x 6 cells of quads, plus a coupling pair per story top.
	assert.Equal(t, 60, countKind(m, model.ElemQuad))
	assert.Equal(t, 6, countKind(m, model.ElemCoupling))
	assert.Len(t, m.Elements, 66)

	// Element identifiers are assigned sequentially from 1.
	for i, e := range m.Elements {
		assert.Equal(t, model.ElementID(i+1), e.ID)
	}
}

func TestBuildICoreGeometryLandmarks(t *testing.T) {
	m, err := NewBuilder().Build(coreDef())
	require.NoError(t, err)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	maxZ := math.Inf(-1)
	for _, n := range m.Nodes {
		minX, maxX = math.Min(minX, n.Pos.X), math.Max(maxX, n.Pos.X)
		minY, maxY = math.Min(minY, n.Pos.Y), math.Max(maxY, n.Pos.Y)
		maxZ = math.Max(maxZ, n.Pos.Z)
	}
	// Centerline extents: flange ends at x = +-1500, flange centerlines
	// at y = +-3250, roof at z = 9000.
	assert.InDelta(t, -1500, minX, 1e-9)
	assert.InDelta(t, 1500, maxX, 1e-9)
	assert.InDelta(t, -3250, minY, 1e-9)
	assert.InDelta(t, 3250, maxY, 1e-9)
	assert.InDelta(t, 9000, maxZ, 1e-9)
}

func TestBuildCouplingPairs(t *testing.T) {
	m, err := NewBuilder().Build(coreDef())
	require.NoError(t, err)

	var couplings []*model.Element
	for i := range m.Elements {
		if m.Elements[i].Kind == model.ElemCoupling {
			couplings = append(couplings, m.Elements[i])
		}
	}
	require.Len(t, couplings, 6)

	nodeByID := make(map[model.NodeID]*model.Node)
	for _, n := range m.Nodes {
		nodeByID[n.ID] = n
	}
	for _, c := range couplings {
		data := c.Data.(model.CouplingData)
		assert.Equal(t, "core", data.Parent)
		assert.InDelta(t, 6500, data.Span, 1e-9)
		// Both endpoints are pre-existing wall-mesh nodes on a flange
		// end, at the same elevation.
		a, b := nodeByID[c.Nodes[0]], nodeByID[c.Nodes[1]]
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.InDelta(t, a.Pos.Z, b.Pos.Z, 1e-9)
		assert.InDelta(t, 1500, math.Abs(a.Pos.X), 1e-9)
	}

	// The two beams of each level are parallel.
	o0 := couplings[0].Data.(model.CouplingData).Orientation
	o1 := couplings[1].Data.(model.CouplingData).Orientation
	assert.InDelta(t, 0, o0.Sub(o1).Length(), 1e-12)
}

func TestBuildDeterminism(t *testing.T) {
	def := coreDef()
	def.Beams = []BeamDef{{
		Name: "g1", Floor: 1,
		A: v2.Vec{X: -3000}, B: v2.Vec{X: 3000},
		SectionRef: "b300",
	}}
	def.Columns = []ColumnDef{{Name: "c1", X: 5000, Y: 0, SectionRef: "c400"}}

	m1, err := NewBuilder().Build(def)
	require.NoError(t, err)
	m2, err := NewBuilder().Build(def)
	require.NoError(t, err)

	assert.NotEqual(t, m1.BuildID, m2.BuildID)
	assert.Equal(t, m1.Nodes, m2.Nodes)
	assert.Equal(t, m1.Elements, m2.Elements)
}

// A beam riding exactly along the bottom flange outer face overlaps the
// footprint boundary for its full length and is swallowed whole.
func TestBuildBeamOnFlangeFaceVanishes(t *testing.T) {
	def := coreDef()
	def.Beams = []BeamDef{{
		Name: "g1", Floor: 1,
		A: v2.Vec{X: -1500, Y: -3500}, B: v2.Vec{X: 1500, Y: -3500},
		SectionRef: "b300",
	}}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)
	assert.Equal(t, 0, countKind(m, model.ElemLine))
}

func TestBuildBeamSplitAtWeb(t *testing.T) {
	def := coreDef()
	def.Beams = []BeamDef{{
		Name: "g1", Floor: 2,
		A: v2.Vec{X: -3000}, B: v2.Vec{X: 3000},
		SectionRef: "b300",
	}}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)

	var lines []*model.Element
	for i := range m.Elements {
		if m.Elements[i].Kind == model.ElemLine {
			lines = append(lines, m.Elements[i])
		}
	}
	require.Len(t, lines, 2)

	nodeByID := make(map[model.NodeID]*model.Node)
	for _, n := range m.Nodes {
		nodeByID[n.ID] = n
	}
	left, right := lines[0], lines[1]
	ld := left.Data.(model.LineData)
	rd := right.Data.(model.LineData)

	assert.Equal(t, geom.ConnOriginal, ld.ConnA)
	assert.Equal(t, geom.ConnDerived, ld.ConnB)
	assert.Equal(t, geom.ConnDerived, rd.ConnA)
	assert.Equal(t, geom.ConnOriginal, rd.ConnB)

	// The derived endpoints sit on the web faces at x = +-250, on the
	// beam's floor level.
	assert.InDelta(t, -250, nodeByID[left.Nodes[1]].Pos.X, 1e-9)
	assert.InDelta(t, 250, nodeByID[right.Nodes[0]].Pos.X, 1e-9)
	assert.InDelta(t, 6000, nodeByID[left.Nodes[1]].Pos.Z, 1e-9)
}

func TestBuildColumnsPerStory(t *testing.T) {
	def := coreDef()
	def.Columns = []ColumnDef{{Name: "c1", X: 8000, Y: 0, SectionRef: "c400"}}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)

	var lines []*model.Element
	for i := range m.Elements {
		if m.Elements[i].Kind == model.ElemLine {
			lines = append(lines, m.Elements[i])
		}
	}
	require.Len(t, lines, 3)
	for k, e := range lines {
		data := e.Data.(model.LineData)
		assert.Equal(t, "c1", data.Member)
		assert.Equal(t, k, data.SubIndex)
	}
	// Story tops and bottoms chain: top node of story k is the bottom
	// node of story k+1.
	assert.Equal(t, lines[0].Nodes[1], lines[1].Nodes[0])
	assert.Equal(t, lines[1].Nodes[1], lines[2].Nodes[0])
}

func TestBuildSlabExcludesWallFootprint(t *testing.T) {
	def := coreDef()
	def.Stories = 1
	// A slab whose west half overlaps the core's bounding box.
	def.Slabs = []SlabDef{{
		Name:       "s1",
		Origin:     v2.Vec{X: 0, Y: -4000},
		Width:      8000,
		Depth:      8000,
		Nx:         4,
		Ny:         4,
		SectionRef: "s200",
	}}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)

	// The core's bound reaches x = 1500: the first cell column (x in
	// 0..2000) intersects it at every row and drops out; the remaining
	// 3 x 4 cells survive. Wall quads: 5 runs x 2 x 2.
	assert.Equal(t, 20+12, countKind(m, model.ElemQuad))

	// Surviving slab cells never overlap the wall footprint bound.
	for _, e := range m.Elements {
		q, ok := e.Data.(model.QuadShellData)
		if !ok || q.Member != "s1/floor-1" {
			continue
		}
		assert.NotEqual(t, 0, q.Col, "cell column 0 must be excluded")
	}
}

func TestBuildSlabNodesCarryFloor(t *testing.T) {
	def := coreDef()
	def.Slabs = []SlabDef{{
		Name:       "s1",
		Origin:     v2.Vec{X: 5000, Y: 0},
		Width:      2000,
		Depth:      2000,
		Nx:         2,
		Ny:         2,
		SectionRef: "s200",
	}}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)

	for _, n := range m.Nodes {
		if n.Pos.X < 4000 {
			continue // wall nodes are unset
		}
		wantFloor := int(math.Round(n.Pos.Z / def.StoryHeight))
		assert.Equal(t, wantFloor, n.Floor, "slab node at %v", n.Pos)
	}
}

func TestBuildTubeCore(t *testing.T) {
	def := Definition{
		Stories:        2,
		StoryHeight:    3000,
		WallDivisions:  2,
		StoryDivisions: 2,
		Walls: []WallDef{{
			Name: "tube",
			Section: outline.TubeSection{
				Width:        4000,
				Depth:        8000,
				Thickness:    400,
				OpeningWidth: 1200,
				Placement:    outline.PlacementBoth,
			},
			SectionRef: "w400",
		}},
	}
	m, err := NewBuilder().Build(def)
	require.NoError(t, err)

	// One coupling per opening per story top.
	assert.Equal(t, 4, countKind(m, model.ElemCoupling))
	// Six runs (two piers per opening wall, two side walls).
	assert.Equal(t, 6*2*4, countKind(m, model.ElemQuad))
}

func TestBuildRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Definition)
	}{
		{"no stories", func(d *Definition) { d.Stories = 0 }},
		{"flat story", func(d *Definition) { d.StoryHeight = 0 }},
		{"zero divisions", func(d *Definition) { d.WallDivisions = 0 }},
		{"unnamed wall", func(d *Definition) { d.Walls[0].Name = "" }},
		{"duplicate wall", func(d *Definition) {
			d.Walls = append(d.Walls, d.Walls[0])
		}},
		{"beam off the building", func(d *Definition) {
			d.Beams = []BeamDef{{Name: "g1", Floor: 9, A: v2.Vec{}, B: v2.Vec{X: 1}}}
		}},
		{"bad section", func(d *Definition) {
			d.Walls[0].Section = outline.ISection{FlangeWidth: 3000, WebLength: 6000, Thickness: 3500}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := coreDef()
			tc.mut(&def)
			_, err := NewBuilder().Build(def)
			require.Error(t, err)
			var gerr *model.GeometryError
			assert.ErrorAs(t, err, &gerr)
		})
	}
}
