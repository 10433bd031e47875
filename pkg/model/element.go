package model

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ahertel/ossature/pkg/geom"
)

// ElementID identifies an element in the finished model.
type ElementID int

// ElementKind enumerates the element kinds the solver understands.
type ElementKind int

const (
	ElemLine     ElementKind = iota // 2-node frame element
	ElemCoupling                    // 2-node connector beam
	ElemQuad                        // 4-node shell
	ElemTri                         // 3-node shell
)

func (k ElementKind) String() string {
	switch k {
	case ElemLine:
		return "line"
	case ElemCoupling:
		return "coupling"
	case ElemQuad:
		return "quad"
	case ElemTri:
		return "tri"
	default:
		return "unknown"
	}
}

// Element is an ordered list of node identifiers plus kind-specific
// payload. Created once during generation, immutable afterward.
type Element struct {
	ID      ElementID   `json:"id"`
	Kind    ElementKind `json:"kind"`
	Nodes   []NodeID    `json:"nodes"`
	Section string      `json:"section,omitempty"` // section/material reference
	Data    ElementData `json:"data"`
}

// ElementData is the closed union of kind-specific element payloads.
type ElementData interface {
	elementData() // marker method restricting implementations to this package
}

// LineData is the payload of a frame line sub-element produced by member
// segmentation or trimming.
type LineData struct {
	Member      string              `json:"member"`    // parent member id
	SubIndex    int                 `json:"sub_index"` // position among the member's sub-elements
	ConnA       geom.ConnectionKind `json:"conn_a"`
	ConnB       geom.ConnectionKind `json:"conn_b"`
	Orientation v3.Vec              `json:"orientation"` // local axis vector
}

func (LineData) elementData() {}

// CouplingData is the payload of a connector beam joining two separated
// wall segments.
type CouplingData struct {
	Parent      string  `json:"parent"` // wall the connector belongs to
	Span        float64 `json:"span"`
	Orientation v3.Vec  `json:"orientation"`
}

func (CouplingData) elementData() {}

// QuadShellData is the payload of a quadrilateral shell element.
type QuadShellData struct {
	Member string `json:"member"` // parent panel
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

func (QuadShellData) elementData() {}

// TriShellData is the payload of a triangular shell element. Half records
// which side of the cell diagonal the triangle covers (0 or 1).
type TriShellData struct {
	Member string `json:"member"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Half   int    `json:"half"`
}

func (TriShellData) elementData() {}
