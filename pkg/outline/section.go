package outline

import (
	"fmt"

	"github.com/ahertel/ossature/pkg/model"
)

// SectionKind enumerates the canonical wall cross-section shapes.
type SectionKind int

const (
	SectionI    SectionKind = iota // two flanges joined by a web
	SectionTube                    // rectangular tube with opening(s)
)

func (k SectionKind) String() string {
	switch k {
	case SectionI:
		return "i-section"
	case SectionTube:
		return "tube"
	default:
		return "unknown"
	}
}

// OpeningPlacement selects where a tube's opening(s) sit along the long
// axis. It moves the hole loop(s) without changing outer or opening
// dimensions.
type OpeningPlacement int

const (
	PlacementTop    OpeningPlacement = iota // +y end
	PlacementBottom                         // -y end
	PlacementBoth                           // both ends, two separate hole loops
)

func (p OpeningPlacement) String() string {
	switch p {
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	case PlacementBoth:
		return "both"
	default:
		return "unknown"
	}
}

// SectionData is the closed union of section parameter structs. The local
// frame convention is shared by every variant: axis 1 (x) is the first
// characteristic in-plane dimension, axis 2 (y) the second, origin at the
// section centroid.
type SectionData interface {
	sectionData() // marker method restricting implementations to this package

	// Kind returns the section shape.
	Kind() SectionKind
	// Validate rejects malformed dimensions before any loop is emitted.
	Validate() error
}

// ISection is an I-shaped core: two parallel flanges along x joined by a
// single web along y. WebLength is the clear distance between the inner
// flange faces; Thickness applies to flanges and web alike.
type ISection struct {
	FlangeWidth float64 `json:"flange_width"`
	WebLength   float64 `json:"web_length"`
	Thickness   float64 `json:"thickness"`
}

func (ISection) sectionData() {}

// Kind returns SectionI.
func (ISection) Kind() SectionKind { return SectionI }

// Validate checks the I-section dimensions.
func (s ISection) Validate() error {
	switch {
	case s.FlangeWidth <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("flange width %g must be positive", s.FlangeWidth)}
	case s.WebLength <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("web length %g must be positive", s.WebLength)}
	case s.Thickness <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("thickness %g must be positive", s.Thickness)}
	case s.Thickness >= s.FlangeWidth:
		return &model.GeometryError{Message: fmt.Sprintf("thickness %g must be smaller than flange width %g", s.Thickness, s.FlangeWidth)}
	}
	return nil
}

// TubeSection is a rectangular tube core of outer size Width x Depth with
// wall Thickness and one or two openings of OpeningWidth in the walls at
// the ends of the long (y) axis.
type TubeSection struct {
	Width        float64          `json:"width"`
	Depth        float64          `json:"depth"`
	Thickness    float64          `json:"thickness"`
	OpeningWidth float64          `json:"opening_width"`
	Placement    OpeningPlacement `json:"placement"`
}

func (TubeSection) sectionData() {}

// Kind returns SectionTube.
func (TubeSection) Kind() SectionKind { return SectionTube }

// Validate checks the tube dimensions. The opening must leave pier
// material on both sides of the wall it interrupts.
func (s TubeSection) Validate() error {
	switch {
	case s.Width <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("width %g must be positive", s.Width)}
	case s.Depth <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("depth %g must be positive", s.Depth)}
	case s.Thickness <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("thickness %g must be positive", s.Thickness)}
	case 2*s.Thickness >= s.Width || 2*s.Thickness >= s.Depth:
		return &model.GeometryError{Message: fmt.Sprintf("thickness %g leaves no interior for outer size %g x %g", s.Thickness, s.Width, s.Depth)}
	case s.OpeningWidth <= 0:
		return &model.GeometryError{Message: fmt.Sprintf("opening width %g must be positive", s.OpeningWidth)}
	case s.OpeningWidth >= s.Width-2*s.Thickness:
		return &model.GeometryError{Message: fmt.Sprintf("opening width %g leaves no pier in wall of width %g", s.OpeningWidth, s.Width)}
	case s.Placement != PlacementTop && s.Placement != PlacementBottom && s.Placement != PlacementBoth:
		return &model.GeometryError{Message: fmt.Sprintf("unknown opening placement %d", s.Placement)}
	}
	return nil
}
