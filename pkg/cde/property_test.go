package cde

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

// genSquare draws an axis-aligned square hazard shape wholly inside the
// engine's 0..100 bbox, small enough to leave room for the square itself.
func genSquare(t *rapid.T) *geo.SimplePolygon {
	x0 := float32(rapid.Float64Range(1, 80).Draw(t, "x0"))
	y0 := float32(rapid.Float64Range(1, 80).Draw(t, "y0"))
	side := float32(rapid.Float64Range(1, 15).Draw(t, "side"))
	p, err := geo.NewSimplePolygon([]geo.Point{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}, surrogate.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSimplePolygon: %v", err)
	}
	return p
}

// TestRegisterThenDeregisterRestoresLen checks that registering any number
// of hazards and then immediately deregistering every one of them returns
// the engine to its original, empty Len() - register/deregister never
// leaks an entry and never double-removes one.
func TestRegisterThenDeregisterRestoresLen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bbox := geo.NewRect(0, 0, 100, 100)
		e := NewEngine(bbox, DefaultConfig())

		n := rapid.IntRange(0, 20).Draw(t, "n")
		keys := make([]hazard.Key, 0, n)
		for i := 0; i < n; i++ {
			key, err := e.Register(hazard.Hazard{
				Entity: hazard.PlacedItem(i, uint64(i)),
				Shape:  genSquare(t),
				Side:   hazard.SideInside,
			})
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			keys = append(keys, key)
		}
		if e.Len() != n {
			t.Fatalf("Len() = %d after registering %d hazards, want %d", e.Len(), n, n)
		}

		for _, key := range keys {
			if err := e.Deregister(key, Immediate); err != nil {
				t.Fatalf("Deregister: %v", err)
			}
		}
		if e.Len() != 0 {
			t.Fatalf("Len() = %d after deregistering every hazard, want 0", e.Len())
		}
	})
}

// TestSnapshotRestoreRoundTripsLen checks that Snapshot followed by further
// mutation followed by Restore always brings Len() back to what it was at
// snapshot time, regardless of what happened in between.
func TestSnapshotRestoreRoundTripsLen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bbox := geo.NewRect(0, 0, 100, 100)
		e := NewEngine(bbox, DefaultConfig())

		base := rapid.IntRange(0, 10).Draw(t, "base")
		for i := 0; i < base; i++ {
			if _, err := e.Register(hazard.Hazard{
				Entity: hazard.PlacedItem(i, uint64(i)),
				Shape:  genSquare(t),
				Side:   hazard.SideInside,
			}); err != nil {
				t.Fatalf("Register: %v", err)
			}
		}
		snap := e.Snapshot()
		wantLen := e.Len()

		extra := rapid.IntRange(0, 10).Draw(t, "extra")
		for i := 0; i < extra; i++ {
			if _, err := e.Register(hazard.Hazard{
				Entity: hazard.PlacedItem(base+i, uint64(base+i)),
				Shape:  genSquare(t),
				Side:   hazard.SideInside,
			}); err != nil {
				t.Fatalf("Register: %v", err)
			}
		}

		e.Restore(snap)
		if e.Len() != wantLen {
			t.Fatalf("Len() = %d after Restore, want %d (snapshot-time length)", e.Len(), wantLen)
		}
	})
}

// TestLazyDeregisterHidesUntilFlush checks that a Lazy-deregistered hazard
// is immediately excluded from Len() but its Key stays resolvable until
// Flush, and Flush removes exactly the inactive ones.
func TestLazyDeregisterHidesUntilFlush(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bbox := geo.NewRect(0, 0, 100, 100)
		e := NewEngine(bbox, DefaultConfig())

		n := rapid.IntRange(1, 15).Draw(t, "n")
		keys := make([]hazard.Key, 0, n)
		for i := 0; i < n; i++ {
			key, err := e.Register(hazard.Hazard{
				Entity: hazard.PlacedItem(i, uint64(i)),
				Shape:  genSquare(t),
				Side:   hazard.SideInside,
			})
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			keys = append(keys, key)
		}

		removedCount := rapid.IntRange(0, n).Draw(t, "removedCount")
		for i := 0; i < removedCount; i++ {
			if err := e.Deregister(keys[i], Lazy); err != nil {
				t.Fatalf("Deregister(Lazy): %v", err)
			}
		}
		if e.Len() != n-removedCount {
			t.Fatalf("Len() = %d after %d lazy deregisters, want %d", e.Len(), removedCount, n-removedCount)
		}

		flushed := e.Flush()
		if flushed != removedCount {
			t.Fatalf("Flush() removed %d, want %d", flushed, removedCount)
		}
		if e.Len() != n-removedCount {
			t.Fatalf("Len() = %d after Flush, want %d", e.Len(), n-removedCount)
		}
	})
}
