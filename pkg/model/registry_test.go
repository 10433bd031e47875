package model

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestGetOrCreateAllocatesSequentially(t *testing.T) {
	r := NewRegistry()

	a := r.GetOrCreate(v3.Vec{X: 0, Y: 0, Z: 0}, FloorUnset)
	b := r.GetOrCreate(v3.Vec{X: 100, Y: 0, Z: 0}, FloorUnset)
	c := r.GetOrCreate(v3.Vec{X: 0, Y: 100, Z: 0}, FloorUnset)

	if a != 1 || b != 2 || c != 3 {
		t.Errorf("ids = %d, %d, %d, want 1, 2, 3", a, b, c)
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
}

func TestGetOrCreateDeduplicatesWithinTolerance(t *testing.T) {
	r := NewRegistry()

	a := r.GetOrCreate(v3.Vec{X: 1500, Y: -3250, Z: 3000}, 1)
	b := r.GetOrCreate(v3.Vec{X: 1500.0000004, Y: -3250, Z: 3000.0000002}, 2)

	if a != b {
		t.Errorf("coordinates within tolerance resolved to %d and %d", a, b)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	if r.Hits() != 1 {
		t.Errorf("Hits = %d, want 1", r.Hits())
	}
	// First registration wins the floor tag.
	if r.Nodes()[0].Floor != 1 {
		t.Errorf("floor = %d, want 1", r.Nodes()[0].Floor)
	}
}

func TestLookupNeverAllocates(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup(v3.Vec{X: 1, Y: 2, Z: 3}); ok {
		t.Error("lookup on empty registry reported a node")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after Lookup, want 0", r.Len())
	}

	id := r.GetOrCreate(v3.Vec{X: 1, Y: 2, Z: 3}, FloorUnset)
	got, ok := r.Lookup(v3.Vec{X: 1, Y: 2, Z: 3})
	if !ok || got != id {
		t.Errorf("Lookup = %d, %v, want %d, true", got, ok, id)
	}
}

func TestRegisterExisting(t *testing.T) {
	r := NewRegistry()
	id := r.GetOrCreate(v3.Vec{X: 5, Y: 5, Z: 0}, FloorUnset)

	// Same point, same id: a no-op, not an error.
	if err := r.RegisterExisting(id, v3.Vec{X: 5, Y: 5, Z: 0}); err != nil {
		t.Fatalf("re-registering the same node: %v", err)
	}

	// Admitting an externally created node must not materialize it.
	if err := r.RegisterExisting(99, v3.Vec{X: 50, Y: 0, Z: 0}); err != nil {
		t.Fatalf("RegisterExisting: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d after RegisterExisting, want 1", r.Len())
	}
	got, ok := r.Lookup(v3.Vec{X: 50, Y: 0, Z: 0})
	if !ok || got != 99 {
		t.Errorf("Lookup = %d, %v, want 99, true", got, ok)
	}

	// Same coordinate under a different id is a connectivity violation.
	err := r.RegisterExisting(7, v3.Vec{X: 5, Y: 5, Z: 0})
	var ce *ConnectivityError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConnectivityError", err)
	}
}

func TestRegistryDeterminism(t *testing.T) {
	build := func() []*Node {
		r := NewRegistry()
		for i := 0; i < 20; i++ {
			for j := 0; j < 20; j++ {
				r.GetOrCreate(v3.Vec{X: float64(i * 250), Y: float64(j * 250), Z: 0}, FloorUnset)
			}
		}
		// Revisit half the grid to exercise the dedup path.
		for i := 0; i < 10; i++ {
			r.GetOrCreate(v3.Vec{X: float64(i * 250), Y: 0, Z: 0}, FloorUnset)
		}
		return r.Nodes()
	}

	a := build()
	b := build()
	if len(a) != len(b) {
		t.Fatalf("node counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Pos != b[i].Pos {
			t.Fatalf("node %d differs between identical builds", i)
		}
	}
}
