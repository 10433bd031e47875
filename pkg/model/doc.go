// Package model defines the structural model data: the deduplicating node
// registry, the element kinds with their typed payloads, the frozen build
// output, and the error taxonomy shared by every generator.
package model
