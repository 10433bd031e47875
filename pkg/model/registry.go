package model

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ahertel/ossature/pkg/geom"
)

// coordKey is a coordinate quantized to the shared tolerance grid.
type coordKey struct {
	x, y, z int64
}

func keyOf(p v3.Vec) coordKey {
	return coordKey{
		x: geom.Quantize(p.X),
		y: geom.Quantize(p.Y),
		z: geom.Quantize(p.Z),
	}
}

// NodeRegistry deduplicates coordinates into node identifiers. It is the
// single identifier authority of a build: every generator resolves every
// coordinate through the same registry instance, which is how two
// independently meshed panels sharing an edge end up referencing the
// literal same nodes. One registry per build; read-only after the model
// is finalized.
type NodeRegistry struct {
	keys  map[coordKey]NodeID
	nodes []*Node // allocation order; index i holds ID i+1
	hits  int
}

// NewRegistry creates an empty node registry.
func NewRegistry() *NodeRegistry {
	return &NodeRegistry{
		keys: make(map[coordKey]NodeID),
	}
}

// GetOrCreate resolves a coordinate to a node identifier, allocating a
// new node when no node exists within tolerance. Identifiers are assigned
// in call order, so identical builds produce identical IDs.
func (r *NodeRegistry) GetOrCreate(p v3.Vec, floor int) NodeID {
	k := keyOf(p)
	if id, ok := r.keys[k]; ok {
		r.hits++
		return id
	}
	id := NodeID(len(r.nodes) + 1)
	r.keys[k] = id
	r.nodes = append(r.nodes, &Node{ID: id, Pos: p, Floor: floor})
	return id
}

// Lookup returns the identifier already registered for a coordinate, if
// any. It never allocates.
func (r *NodeRegistry) Lookup(p v3.Vec) (NodeID, bool) {
	id, ok := r.keys[keyOf(p)]
	return id, ok
}

// RegisterExisting admits a node created outside the registry's own
// allocation path into the lookup table. The node is not re-materialized
// in the model: only the coordinate mapping is recorded. Registering a
// coordinate that already resolves to the same identifier is a no-op;
// registering it under a different identifier is a ConnectivityError.
func (r *NodeRegistry) RegisterExisting(id NodeID, p v3.Vec) error {
	k := keyOf(p)
	if existing, ok := r.keys[k]; ok {
		if existing == id {
			return nil
		}
		return &ConnectivityError{
			Message: fmt.Sprintf(
				"coordinate (%g, %g, %g) already registered as node %d, cannot re-register as node %d",
				p.X, p.Y, p.Z, existing, id),
		}
	}
	r.keys[k] = id
	return nil
}

// Node returns the node allocated under an identifier.
func (r *NodeRegistry) Node(id NodeID) (*Node, error) {
	if id < 1 || int(id) > len(r.nodes) {
		return nil, &ConnectivityError{
			Message: fmt.Sprintf("node %d is not in the registry", id),
		}
	}
	return r.nodes[id-1], nil
}

// Nodes returns the registry-allocated nodes in allocation order.
func (r *NodeRegistry) Nodes() []*Node {
	return r.nodes
}

// Len returns the number of registry-allocated nodes.
func (r *NodeRegistry) Len() int {
	return len(r.nodes)
}

// Hits returns how many GetOrCreate calls resolved to an existing node.
// Every hit is a coordinate collision correctly merged into one
// identifier instead of a duplicated degree of freedom.
func (r *NodeRegistry) Hits() int {
	return r.hits
}
