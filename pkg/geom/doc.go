// Package geom provides the shared geometric primitives for the mesh
// assembly engine: the single tolerance constant, coordinate quantization,
// plan-view segments with connection tags, and line intersection math.
package geom
