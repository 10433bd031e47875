package model

import (
	"github.com/google/uuid"
)

// Model is the immutable build output handed to downstream consumers
// (solver, load application, reporting). It is finalized exactly once;
// no partial model is ever exposed.
type Model struct {
	BuildID  string     `json:"build_id"`
	Nodes    []*Node    `json:"nodes"`
	Elements []*Element `json:"elements"`
}

// Finalize freezes a build into a Model, assigning sequential element
// identifiers in generation order. The elements are numbered here rather
// than by the generators so that one authority controls both node and
// element identity.
func Finalize(reg *NodeRegistry, elements []Element) *Model {
	out := make([]*Element, len(elements))
	for i := range elements {
		e := elements[i]
		e.ID = ElementID(i + 1)
		out[i] = &e
	}
	return &Model{
		BuildID:  uuid.NewString(),
		Nodes:    reg.Nodes(),
		Elements: out,
	}
}

// Stats summarizes a model for reporting.
type Stats struct {
	Nodes     int `json:"nodes"`
	Lines     int `json:"lines"`
	Couplings int `json:"couplings"`
	Quads     int `json:"quads"`
	Tris      int `json:"tris"`
}

// Stats counts nodes and elements by kind.
func (m *Model) Stats() Stats {
	s := Stats{Nodes: len(m.Nodes)}
	for _, e := range m.Elements {
		switch e.Kind {
		case ElemLine:
			s.Lines++
		case ElemCoupling:
			s.Couplings++
		case ElemQuad:
			s.Quads++
		case ElemTri:
			s.Tris++
		}
	}
	return s
}
