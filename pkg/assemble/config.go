package assemble

import (
	"fmt"
	"io"
	"os"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gopkg.in/yaml.v3"

	"github.com/ahertel/ossature/pkg/outline"
)

// fileDefinition is the YAML shape of a building definition file.
type fileDefinition struct {
	Stories        int     `yaml:"stories"`
	StoryHeight    float64 `yaml:"story_height"`
	WallDivisions  int     `yaml:"wall_divisions"`
	StoryDivisions int     `yaml:"story_divisions"`
	Triangular     bool    `yaml:"triangular"`

	Walls   []fileWall   `yaml:"walls"`
	Columns []fileColumn `yaml:"columns"`
	Beams   []fileBeam   `yaml:"beams"`
	Slabs   []fileSlab   `yaml:"slabs"`
}

type fileSection struct {
	Kind         string  `yaml:"kind"` // "i" or "tube"
	FlangeWidth  float64 `yaml:"flange_width"`
	WebLength    float64 `yaml:"web_length"`
	Thickness    float64 `yaml:"thickness"`
	Width        float64 `yaml:"width"`
	Depth        float64 `yaml:"depth"`
	OpeningWidth float64 `yaml:"opening_width"`
	Placement    string  `yaml:"placement"` // "top", "bottom", "both"
}

type fileWall struct {
	Name       string      `yaml:"name"`
	Section    fileSection `yaml:"section"`
	X          float64     `yaml:"x"`
	Y          float64     `yaml:"y"`
	SectionRef string      `yaml:"section_ref"`
}

type fileColumn struct {
	Name       string  `yaml:"name"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	SectionRef string  `yaml:"section_ref"`
}

type fileBeam struct {
	Name       string  `yaml:"name"`
	Floor      int     `yaml:"floor"`
	X1         float64 `yaml:"x1"`
	Y1         float64 `yaml:"y1"`
	X2         float64 `yaml:"x2"`
	Y2         float64 `yaml:"y2"`
	SectionRef string  `yaml:"section_ref"`
}

type fileSlab struct {
	Name       string  `yaml:"name"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Depth      float64 `yaml:"depth"`
	Nx         int     `yaml:"nx"`
	Ny         int     `yaml:"ny"`
	SectionRef string  `yaml:"section_ref"`
}

// Load decodes a YAML building definition.
func Load(r io.Reader) (Definition, error) {
	var fd fileDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fd); err != nil {
		return Definition{}, fmt.Errorf("decode definition: %w", err)
	}
	return fd.toDefinition()
}

// LoadFile decodes a YAML building definition from a file.
func LoadFile(path string) (Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return Definition{}, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (fd fileDefinition) toDefinition() (Definition, error) {
	def := Definition{
		Stories:        fd.Stories,
		StoryHeight:    fd.StoryHeight,
		WallDivisions:  fd.WallDivisions,
		StoryDivisions: fd.StoryDivisions,
		Triangular:     fd.Triangular,
	}
	if def.WallDivisions == 0 {
		def.WallDivisions = 2
	}
	if def.StoryDivisions == 0 {
		def.StoryDivisions = 2
	}

	for _, w := range fd.Walls {
		sec, err := w.Section.toSection()
		if err != nil {
			return Definition{}, fmt.Errorf("wall %s: %w", w.Name, err)
		}
		def.Walls = append(def.Walls, WallDef{
			Name:       w.Name,
			Section:    sec,
			Offset:     v2.Vec{X: w.X, Y: w.Y},
			SectionRef: w.SectionRef,
		})
	}
	for _, c := range fd.Columns {
		def.Columns = append(def.Columns, ColumnDef{
			Name: c.Name, X: c.X, Y: c.Y, SectionRef: c.SectionRef,
		})
	}
	for _, b := range fd.Beams {
		def.Beams = append(def.Beams, BeamDef{
			Name:       b.Name,
			Floor:      b.Floor,
			A:          v2.Vec{X: b.X1, Y: b.Y1},
			B:          v2.Vec{X: b.X2, Y: b.Y2},
			SectionRef: b.SectionRef,
		})
	}
	for _, s := range fd.Slabs {
		def.Slabs = append(def.Slabs, SlabDef{
			Name:       s.Name,
			Origin:     v2.Vec{X: s.X, Y: s.Y},
			Width:      s.Width,
			Depth:      s.Depth,
			Nx:         s.Nx,
			Ny:         s.Ny,
			SectionRef: s.SectionRef,
		})
	}
	return def, nil
}

func (fs fileSection) toSection() (outline.SectionData, error) {
	switch fs.Kind {
	case "i":
		return outline.ISection{
			FlangeWidth: fs.FlangeWidth,
			WebLength:   fs.WebLength,
			Thickness:   fs.Thickness,
		}, nil
	case "tube":
		placement, err := parsePlacement(fs.Placement)
		if err != nil {
			return nil, err
		}
		return outline.TubeSection{
			Width:        fs.Width,
			Depth:        fs.Depth,
			Thickness:    fs.Thickness,
			OpeningWidth: fs.OpeningWidth,
			Placement:    placement,
		}, nil
	default:
		return nil, fmt.Errorf("unknown section kind %q", fs.Kind)
	}
}

func parsePlacement(s string) (outline.OpeningPlacement, error) {
	switch s {
	case "", "top":
		return outline.PlacementTop, nil
	case "bottom":
		return outline.PlacementBottom, nil
	case "both":
		return outline.PlacementBoth, nil
	default:
		return 0, fmt.Errorf("unknown opening placement %q", s)
	}
}
