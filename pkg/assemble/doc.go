// Package assemble orchestrates a mesh build: it owns the one node
// registry of the build and runs the generators in a fixed dependency
// order (outlines, wall panels, slabs, columns, coupling beams, frame
// beam trimming). A build either completes deterministically or fails
// fast; no partial model ever escapes.
package assemble
