package model

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// NodeID identifies a structural node. IDs are allocated sequentially
// from 1 by the registry, in call order.
type NodeID int

// IsZero reports whether the ID is unset.
func (id NodeID) IsZero() bool {
	return id == 0
}

// FloorUnset marks a node that carries no floor-level tag.
const FloorUnset = -1

// Node is a structural node: an identifier, a 3D coordinate and an
// optional floor-level tag. Nodes are owned by the registry for the
// duration of a build and never duplicated within the shared tolerance.
type Node struct {
	ID    NodeID  `json:"id"`
	Pos   v3.Vec  `json:"pos"`
	Floor int     `json:"floor,omitempty"` // FloorUnset when untagged
}
