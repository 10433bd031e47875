package model

import "fmt"

// GeometryError reports malformed input geometry: a non-closed outline
// loop, a non-positive dimension, a division count below one. It is fatal
// and aborts the build before any output is produced.
type GeometryError struct {
	Context string // offending wall / panel / loop
	Message string
}

func (e *GeometryError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("geometry: %s", e.Message)
	}
	return fmt.Sprintf("geometry: %s: %s", e.Context, e.Message)
}

// ConnectivityError reports a violated registry invariant: the same
// coordinate registered under two different identifiers, or a connector
// endpoint that resolves to no existing node. Always fatal, never
// silently corrected.
type ConnectivityError struct {
	Context string
	Message string
}

func (e *ConnectivityError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("connectivity: %s", e.Message)
	}
	return fmt.Sprintf("connectivity: %s: %s", e.Context, e.Message)
}

// TrimClassificationError reports that the inside/outside classification
// of a trim interval stayed ambiguous after the collinear-overlap
// fallback. It signals a defect in the outline geometry itself.
type TrimClassificationError struct {
	Context string
	Message string
}

func (e *TrimClassificationError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("trim classification: %s", e.Message)
	}
	return fmt.Sprintf("trim classification: %s: %s", e.Context, e.Message)
}
